package domain

// SiteSettings is the single global configuration record. It is lazily
// created with these defaults on first access and never deleted.
type SiteSettings struct {
	ID                uint `json:"-" gorm:"primaryKey"`
	MaintenanceMode   bool `json:"maintenance_mode" gorm:"not null;default:false"`
	AllowRegistration bool `json:"allow_registration" gorm:"not null;default:true"`
	EmailAlerts       bool `json:"email_alerts" gorm:"not null;default:true"`
}

// DefaultSiteSettings returns the record written on first access.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{ID: 1, AllowRegistration: true, EmailAlerts: true}
}
