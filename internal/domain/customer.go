package domain

import "time"

type Customer struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"license_number"`
	Active        bool      `json:"active"`
	CreatedOn     time.Time `json:"created_on"`
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
