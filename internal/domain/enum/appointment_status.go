package enum

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

func (s AppointmentStatus) String() string {
	return string(s)
}

// Linkable reports whether an appointment in this status may be attached
// to a checkout. Completed, cancelled and no-show appointments are not
// offered for linking.
func (s AppointmentStatus) Linkable() bool {
	return s == AppointmentScheduled || s == AppointmentConfirmed
}
