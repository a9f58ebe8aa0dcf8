package models

// ShopConfig is a singleton: at most one row ever exists and writes are
// upsert-on-singleton.
type ShopConfig struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"column:barbershop_name;size:100" json:"barbershop_name"`
	Commission    string `gorm:"column:commission;size:20" json:"commission"`
	Contact       string `gorm:"column:contact;size:100" json:"contact"`
	LogoURL       string `gorm:"column:logo;size:255" json:"logo"`
	BackgroundURL string `gorm:"column:background_image;size:255" json:"background_image"`
	ColorCode     string `gorm:"column:color_code;size:20" json:"color_code"`
}

func (ShopConfig) TableName() string { return "config" }
