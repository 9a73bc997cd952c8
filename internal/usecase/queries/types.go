package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Department string     `json:"department,omitempty"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	IsActive   bool       `json:"isActive"`
}

type SurgerySummaryView struct {
	ID          uuid.UUID `json:"id"`
	PatientName string    `json:"patientName"`
	Procedure   string    `json:"procedure"`
	Surgeon     string    `json:"surgeon"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
}

type SurgeryView struct {
	ID                uuid.UUID  `json:"id"`
	PatientName       string     `json:"patientName"`
	Procedure         string     `json:"procedure"`
	Surgeon           string     `json:"surgeon"`
	Priority          string     `json:"priority"`
	EstimatedDuration int        `json:"estimatedDuration"`
	Status            string     `json:"status"`
	StartTime         *time.Time `json:"startTime,omitempty"`
	EndTime           *time.Time `json:"endTime,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type ScheduleEntryView struct {
	ID        uuid.UUID           `json:"id"`
	SurgeryID uuid.UUID           `json:"surgeryId"`
	Surgery   *SurgerySummaryView `json:"surgery,omitempty"`
	StartTime time.Time           `json:"startTime"`
	EndTime   *time.Time          `json:"endTime"`
	Status    string              `json:"status"`
}

type EquipmentView struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// TheatreView is an operation theatre with its schedule in insertion order.
type TheatreView struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Status         string              `json:"status"`
	CurrentSurgery *SurgerySummaryView `json:"currentSurgery,omitempty"`
	Schedule       []ScheduleEntryView `json:"schedule"`
	Equipment      []EquipmentView     `json:"equipment"`
	Version        int32               `json:"version"`
	CreatedAt      time.Time           `json:"createdAt"`
	LastUpdated    time.Time           `json:"lastUpdated"`
}

type TicketView struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	PatientName string    `json:"patientName"`
	Department  string    `json:"department"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SupplierView struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
}

type DrugView struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	ExpiryDate    time.Time       `json:"expiryDate"`
	MinimumStock  int             `json:"minimumStock"`
	Supplier      SupplierView    `json:"supplier"`
	Location      string          `json:"location"`
	BatchNumber   string          `json:"batchNumber"`
	Price         decimal.Decimal `json:"price"`
	LastRestocked time.Time       `json:"lastRestocked"`
	Status        string          `json:"status"`
	Version       int32           `json:"version"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// DrugValuationView sums quantity x price over every stock line.
type DrugValuationView struct {
	TotalValue    decimal.Decimal `json:"totalValue"`
	DrugCount     int             `json:"drugCount"`
	TotalQuantity int64           `json:"totalQuantity"`
}

type PatientSummaryView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Age     int       `json:"age"`
	Contact string    `json:"contact"`
}

type DoctorSummaryView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type VitalSignsView struct {
	BloodPressure    string   `json:"bloodPressure,omitempty"`
	HeartRate        *float64 `json:"heartRate,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	OxygenSaturation *float64 `json:"oxygenSaturation,omitempty"`
	RespiratoryRate  *float64 `json:"respiratoryRate,omitempty"`
}

type TreatmentView struct {
	Procedure  string    `json:"procedure,omitempty"`
	Medication string    `json:"medication,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type EmergencyView struct {
	ID             uuid.UUID          `json:"id"`
	Patient        PatientSummaryView `json:"patient"`
	Type           string             `json:"type"`
	Severity       string             `json:"severity"`
	Description    string             `json:"description"`
	AssignedDoctor *DoctorSummaryView `json:"assignedDoctor,omitempty"`
	Status         string             `json:"status"`
	Location       string             `json:"location"`
	VitalSigns     VitalSignsView     `json:"vitalSigns"`
	Treatments     []TreatmentView    `json:"treatments"`
	Notes          string             `json:"notes,omitempty"`
	Version        int32              `json:"version"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type MedicalRecordView struct {
	Condition string    `json:"condition"`
	Diagnosis string    `json:"diagnosis,omitempty"`
	Treatment string    `json:"treatment,omitempty"`
	Date      time.Time `json:"date"`
}

type PatientView struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Age            int                 `json:"age"`
	Gender         string              `json:"gender"`
	Contact        string              `json:"contact"`
	Address        string              `json:"address"`
	BloodGroup     string              `json:"bloodGroup"`
	MedicalHistory []MedicalRecordView `json:"medicalHistory"`
	Version        int32               `json:"version"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type DepartmentView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Head        string    `json:"head"`
	Location    string    `json:"location"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ContentItemView struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Priority  int             `json:"priority"`
	StartTime *time.Time      `json:"startTime,omitempty"`
	EndTime   *time.Time      `json:"endTime,omitempty"`
	IsActive  bool            `json:"isActive"`
}

type DisplaySettingsView struct {
	RefreshInterval int    `json:"refreshInterval"`
	DisplayMode     string `json:"displayMode"`
	Theme           string `json:"theme"`
}

type DisplayView struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Department  string              `json:"department"`
	Location    string              `json:"location"`
	Type        string              `json:"type"`
	Content     []ContentItemView   `json:"content"`
	Settings    DisplaySettingsView `json:"settings"`
	Version     int32               `json:"version"`
	CreatedAt   time.Time           `json:"createdAt"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

// QueueFeedView is what a token board polls: open tickets in serving order.
type QueueFeedView struct {
	Department  string       `json:"department,omitempty"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Tickets     []TicketView `json:"tickets"`
}

// TheatreFeedView is what an OT board polls: every theatre with its active entries.
type TheatreFeedView struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Theatres    []TheatreView `json:"theatres"`
}
