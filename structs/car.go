package structs

import "time"

// CarCondition enumerates car conditions.
type CarCondition string

const (
	ConditionNew  CarCondition = "new"
	ConditionUsed CarCondition = "used"
)

// EngineType enumerates engine types.
type EngineType string

const (
	EngineGasoline EngineType = "gasoline"
	EngineDiesel   EngineType = "diesel"
	EngineHybrid   EngineType = "hybrid"
	EngineElectric EngineType = "electric"
)

// Transmission enumerates transmissions.
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionCVT       Transmission = "cvt"
)

// CarStatus enumerates sale statuses.
type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarReserved  CarStatus = "reserved"
	CarSold      CarStatus = "sold"
)

// Car is a vehicle offered for sale or rent.
type Car struct {
	ID           int          `json:"id"`
	VIN          string       `json:"vin"`
	Make         string       `json:"make"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Mileage      int          `json:"mileage"`
	Price        float64      `json:"price"`
	Condition    CarCondition `json:"condition"`
	Color        string       `json:"color"`
	EngineType   EngineType   `json:"engine_type"`
	Transmission Transmission `json:"transmission"`
	Status       CarStatus    `json:"status"`
	Description  *string      `json:"description,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// CarCreate is the car creation request.
type CarCreate struct {
	VIN          string       `json:"vin" binding:"required,vin"`
	Make         string       `json:"make" binding:"required,max=64"`
	Model        string       `json:"model" binding:"required,max=128"`
	Year         int          `json:"year" binding:"required,gte=1900,lte=2100"`
	Mileage      int          `json:"mileage" binding:"gte=0"`
	Price        float64      `json:"price" binding:"required,gt=0"`
	Condition    CarCondition `json:"condition" binding:"required,oneof=new used"`
	Color        string       `json:"color" binding:"required,max=64"`
	EngineType   EngineType   `json:"engine_type" binding:"required,oneof=gasoline diesel hybrid electric"`
	Transmission Transmission `json:"transmission" binding:"required,oneof=manual automatic cvt"`
	Status       CarStatus    `json:"status" binding:"omitempty,oneof=available reserved sold"`
	Description  *string      `json:"description"`
}

// CarUpdate carries optional field updates.
type CarUpdate struct {
	Make         *string       `json:"make" binding:"omitempty,max=64"`
	Model        *string       `json:"model" binding:"omitempty,max=128"`
	Year         *int          `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	Mileage      *int          `json:"mileage" binding:"omitempty,gte=0"`
	Price        *float64      `json:"price" binding:"omitempty,gt=0"`
	Condition    *CarCondition `json:"condition" binding:"omitempty,oneof=new used"`
	Color        *string       `json:"color" binding:"omitempty,max=64"`
	EngineType   *EngineType   `json:"engine_type" binding:"omitempty,oneof=gasoline diesel hybrid electric"`
	Transmission *Transmission `json:"transmission" binding:"omitempty,oneof=manual automatic cvt"`
	Status       *CarStatus    `json:"status" binding:"omitempty,oneof=available reserved sold"`
	Description  *string       `json:"description"`
}

// CarListFilter narrows car listings.
type CarListFilter struct {
	Make       string   `form:"make"`
	Model      string   `form:"model"`
	Status     string   `form:"status" binding:"omitempty,oneof=available reserved sold"`
	EngineType string   `form:"engine_type" binding:"omitempty,oneof=gasoline diesel hybrid electric"`
	PriceMin   *float64 `form:"price_min"`
	PriceMax   *float64 `form:"price_max"`
	YearMin    *int     `form:"year_min"`
	YearMax    *int     `form:"year_max"`
	SortBy     string   `form:"sort_by" binding:"omitempty,oneof=price year created_at updated_at"`
	SortDir    string   `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
}

// CarDetails aggregates a car with its related rows.
type CarDetails struct {
	Car     *Car         `json:"car"`
	Photos  []*CarPhoto  `json:"photos"`
	Reports []*CarReport `json:"reports"`
	Reviews []*Review    `json:"reviews"`
	Orders  []*Order     `json:"orders"`
}
