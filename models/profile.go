package models

import "time"

// BaseProfile carries the contact and address fields shared by the
// individual and corporate registration forms. Embedded, not its own table.
type BaseProfile struct {
	MobilePhone    string    `json:"mobile_phone"`
	WhatsappNumber string    `json:"whatsapp_number"`
	ProfileLink    string    `json:"profile_link"`
	HearAbout      string    `json:"hear_about"`
	Governorate    string    `json:"governorate"`
	City           string    `json:"city"`
	Street         string    `json:"street"`
	Building       string    `json:"building"`
	Floor          string    `json:"floor"`
	Apartment      string    `json:"apartment"`
	AgreedToTerms  bool      `json:"agreed_to_terms"`
	CreatedAt      time.Time `json:"created_at"`
}

type IndividualProfile struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"uniqueIndex" json:"user_id"`
	BaseProfile `gorm:"embedded"`
	FullName             string    `json:"full_name"`
	DateOfBirth          time.Time `json:"date_of_birth"`
	CameraSystem         string    `json:"camera_system"`
	ProfessionalCategory string    `json:"professional_category"`
	PortfolioLink        string    `json:"portfolio_link"`
	IDFront              string    `json:"id_front"` // uploaded document paths
	IDRear               string    `json:"id_rear"`
	OtherID              string    `json:"other_id"`
}

type CorporateProfile struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"uniqueIndex" json:"user_id"`
	BaseProfile `gorm:"embedded"`
	CompanyName            string `json:"company_name"`
	CompanyAddress         string `json:"company_address"`
	CompanyWebsite         string `json:"company_website"`
	CompanySocial          string `json:"company_social"`
	CEOName                string `json:"ceo_name"`
	CEOPhone               string `json:"ceo_phone"`
	CEOEmail               string `json:"ceo_email"`
	CEOIDFront             string `json:"ceo_id_front"`
	CEOIDRear              string `json:"ceo_id_rear"`
	AuthorizedName         string `json:"authorized_name"`
	AuthorizedPhone        string `json:"authorized_phone"`
	AuthorizedEmail        string `json:"authorized_email"`
	AuthorizedIDFront      string `json:"authorized_id_front"`
	AuthorizedIDRear       string `json:"authorized_id_rear"`
	TaxCertificate         string `json:"tax_certificate"`
	CommercialRegistration string `json:"commercial_registration"`
}

type StudioProfile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex" json:"user_id"`
	StudioName string    `json:"studio_name"`
	Phone      string    `json:"phone"`
	Whatsapp   string    `json:"whatsapp"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}
