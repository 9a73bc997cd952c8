package request

import (
	"time"

	"hospital-ops/internal/usecase/commands"
)

type CreatePatientRequest struct {
	Name       string `json:"name" binding:"required,notblank"`
	Age        int    `json:"age" binding:"gte=0,lte=150"`
	Gender     string `json:"gender" binding:"required,oneof=Male Female Other"`
	Contact    string `json:"contact" binding:"required,notblank"`
	Address    string `json:"address" binding:"required,notblank"`
	BloodGroup string `json:"bloodGroup" binding:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

func (r *CreatePatientRequest) ToInput() commands.CreatePatientInput {
	return commands.CreatePatientInput{
		Name:       r.Name,
		Age:        r.Age,
		Gender:     r.Gender,
		Contact:    r.Contact,
		Address:    r.Address,
		BloodGroup: r.BloodGroup,
	}
}

type UpdatePatientRequest struct {
	Name       *string `json:"name" binding:"omitempty,notblank"`
	Age        *int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	Gender     *string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Contact    *string `json:"contact" binding:"omitempty,notblank"`
	Address    *string `json:"address" binding:"omitempty,notblank"`
	BloodGroup *string `json:"bloodGroup" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

func (r *UpdatePatientRequest) ToInput() commands.UpdatePatientInput {
	return commands.UpdatePatientInput{
		Name:       r.Name,
		Age:        r.Age,
		Gender:     r.Gender,
		Contact:    r.Contact,
		Address:    r.Address,
		BloodGroup: r.BloodGroup,
	}
}

type MedicalRecordRequest struct {
	Condition string     `json:"condition" binding:"required,notblank"`
	Diagnosis string     `json:"diagnosis"`
	Treatment string     `json:"treatment"`
	Date      *time.Time `json:"date"`
}

func (r *MedicalRecordRequest) ToInput() commands.MedicalRecordInput {
	return commands.MedicalRecordInput{
		Condition: r.Condition,
		Diagnosis: r.Diagnosis,
		Treatment: r.Treatment,
		Date:      r.Date,
	}
}
