package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hugo-hotel/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hugohotel")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase inserts the showcase rooms when the table is empty.
func SeedDatabase() {
	var count int64
	DB.Model(&models.Room{}).Count(&count)
	if count > 0 {
		log.Println("Rooms already seeded")
		return
	}

	today := time.Now().Format(models.DateLayout)
	rooms := []models.Room{
		{
			Name:         "No. 4 King Junior Suite",
			Description:  "Modern luxury with kingsized bed, walk-in shower, double sinks, sitting area and air conditioning.",
			FacilityList: []string{"King sized bed", "Air Conditioning", "Sitting area"},
		},
		{
			Name:         "No. 3 Luxury Double Room",
			Description:  "Style and beauty with double bed, walk-in shower and daily servicing.",
			FacilityList: []string{"Double bed", "Walk-in shower", "Daily servicing"},
		},
		{
			Name:         "No. 2 Luxury Double Room",
			Description:  "Luxury and comfort with double bed, walk-in shower and daily servicing.",
			FacilityList: []string{"Double bed", "Walk-in shower", "Daily servicing"},
		},
		{
			Name:         "No. 1 The Apartment",
			Description:  "Two spacious bedrooms with kingsized beds, full bathroom, kitchen and living area set across two levels.",
			FacilityList: []string{"Two king sized beds", "Full bathroom", "Kitchen", "Living area"},
		},
	}
	for i := range rooms {
		rooms[i].Created = today
		rooms[i].Facilities = len(rooms[i].FacilityList)
	}

	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(&models.Room{}); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
