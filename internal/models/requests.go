package models

// Request shapes for the JSON bodies the front-end sends. Required fields
// carry validate tags; Crime bodies deliberately have none (the legacy
// service stored a crime with every field empty, and callers rely on it).

type CreateCrimeRequest struct {
	Description   string       `json:"description"`
	SeverityLevel SeverityText `json:"severity_level"`
	Type          string       `json:"type"`
	Status        string       `json:"status"`
}

// UpdateCrimeRequest overwrites every tracked column of a crime.
type UpdateCrimeRequest struct {
	Description   string       `json:"description"`
	SeverityLevel SeverityText `json:"severity_level"`
	Type          string       `json:"type"`
	Status        string       `json:"status"`
}

type CreateOfficerRequest struct {
	Name    string `json:"name" validate:"required"`
	CrimeID uint   `json:"crime_id" validate:"required"`
}

type CreateSuspectRequest struct {
	Name    string `json:"name" validate:"required"`
	Age     int    `json:"age" validate:"required"`
	Gender  string `json:"gender" validate:"required"`
	CrimeID uint   `json:"crime_id" validate:"required"`
}

type CreateVictimRequest struct {
	Name    string `json:"name" validate:"required"`
	Age     int    `json:"age" validate:"required"`
	Gender  string `json:"gender" validate:"required"`
	CrimeID uint   `json:"crime_id" validate:"required"`
}

// CreateCrimeFullRequest creates a crime together with its people in one
// transactional call, removing the orphaned-crime failure mode of the
// sequential client workflow.
type CreateCrimeFullRequest struct {
	Description   string        `json:"description"`
	SeverityLevel SeverityText  `json:"severity_level"`
	Type          string        `json:"type"`
	Status        string        `json:"status"`
	Officers      []PersonInput `json:"officers" validate:"dive"`
	Suspects      []PersonInput `json:"suspects" validate:"dive"`
	Victims       []PersonInput `json:"victims" validate:"dive"`
}

// PersonInput is a pending officer, suspect or victim entry; officers
// ignore Age and Gender.
type PersonInput struct {
	Name   string  `json:"name" validate:"required"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
}

// CrimeDetail is the aggregate returned by the full-create endpoint.
type CrimeDetail struct {
	Crime    Crime     `json:"crime"`
	Officers []Officer `json:"officers"`
	Suspects []Suspect `json:"suspects"`
	Victims  []Victim  `json:"victims"`
}
