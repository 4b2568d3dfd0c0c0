package entities

// BookingEmailData feeds the HTML notification template sent to the business.
type BookingEmailData struct {
	BusinessName string
	CustomerName string
	Phone        string
	Service      string
	DateText     string
	CurrentYear  int
}
