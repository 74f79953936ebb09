package structs

import (
	"encoding/json"
	"time"
)

// ReportType enumerates supported report kinds.
type ReportType string

const (
	ReportVINCheck            ReportType = "vin_check"
	ReportTechnicalInspection ReportType = "technical_inspection"
)

// CarReport is an inspection or history report attached to a car.
type CarReport struct {
	ID         int             `json:"id"`
	CarID      int             `json:"car_id"`
	ReportType ReportType      `json:"report_type"`
	Data       json.RawMessage `json:"data,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CarReportCreate is the report creation request.
type CarReportCreate struct {
	CarID      int             `json:"car_id" binding:"required,gt=0"`
	ReportType ReportType      `json:"report_type" binding:"required,oneof=vin_check technical_inspection"`
	Data       json.RawMessage `json:"data"`
}

// CarReportUpdate carries optional field updates.
type CarReportUpdate struct {
	ReportType *ReportType     `json:"report_type" binding:"omitempty,oneof=vin_check technical_inspection"`
	Data       json.RawMessage `json:"data"`
}

// CarReportListFilter narrows report listings.
type CarReportListFilter struct {
	CarID      *int   `form:"car_id"`
	ReportType string `form:"report_type" binding:"omitempty,oneof=vin_check technical_inspection"`
}
