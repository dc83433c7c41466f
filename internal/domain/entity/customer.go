package entity

import (
	"time"

	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/enum"
)

// Customer represents a salon client as returned by the commerce gateway
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Appointment represents a booked slot for a customer
type Appointment struct {
	ID          int64                  `json:"id"`
	CustomerID  int64                  `json:"customer_id"`
	ServiceName string                 `json:"service_name"`
	StaffName   string                 `json:"staff_name,omitempty"`
	StartTime   time.Time              `json:"start_time"`
	EndTime     time.Time              `json:"end_time"`
	Status      enum.AppointmentStatus `json:"status"`
}
