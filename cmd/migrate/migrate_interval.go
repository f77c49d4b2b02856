// cmd/migrate/migrate_interval.go
package main

import (
	"Contract-Service/internal/app/ds"
	"Contract-Service/internal/app/dsn"
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// demoIntervals - тестовые данные для -seed
var demoIntervals = []ds.Interval{
	{Title: "Unison", Description: "P1", Tone: 0},
	{Title: "Minor second", Description: "m2", Tone: 0.5},
	{Title: "Major second", Description: "M2", Tone: 1},
	{Title: "Minor third", Description: "m3", Tone: 1.5},
	{Title: "Major third", Description: "M3", Tone: 2},
	{Title: "Perfect fourth", Description: "P4", Tone: 2.5},
	{Title: "Tritone", Description: "A4", Tone: 3},
	{Title: "Perfect fifth", Description: "P5", Tone: 3.5},
	{Title: "Minor sixth", Description: "m6", Tone: 4},
	{Title: "Major sixth", Description: "M6", Tone: 4.5},
	{Title: "Minor seventh", Description: "m7", Tone: 5},
	{Title: "Major seventh", Description: "M7", Tone: 5.5},
	{Title: "Octave", Description: "P8", Tone: 6},
}

func main() {
	seed := flag.Bool("seed", false, "insert demo intervals into an empty table")
	flag.Parse()

	_ = godotenv.Load()

	fmt.Println("=== Interval Migration ===")

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	startTime := time.Now()

	// 1. Создаем таблицу intervals
	fmt.Println("1. Migrating intervals table...")
	if err := db.AutoMigrate(&ds.Interval{}); err != nil {
		log.Fatalf("Failed to migrate intervals table: %v", err)
	}
	fmt.Println("   ✓ Table 'intervals' created/verified")

	// 2. Создаем составные индексы
	fmt.Println("2. Creating composite indexes...")
	if err := ds.CreateIntervalIndexes(db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	fmt.Println("   ✓ Indexes created")

	// 3. Заполняем пустую таблицу
	if *seed {
		fmt.Println("3. Seeding demo intervals...")
		inserted, err := seedIntervals(db)
		if err != nil {
			log.Fatalf("Failed to seed intervals: %v", err)
		}
		fmt.Printf("   ✓ Inserted %d intervals\n", inserted)
	}

	// 4. Проверяем данные
	if counts, err := countIntervals(db); err != nil {
		log.Errorf("Failed to count intervals: %v", err)
	} else {
		fmt.Printf("   Total intervals: %d\n", counts.Total)
		fmt.Printf("   Active intervals: %d\n", counts.Active)
		fmt.Printf("   Deleted intervals: %d\n", counts.Deleted)
	}

	fmt.Println("\n=== Migration Completed ===")
	fmt.Printf("Total time: %v\n", time.Since(startTime))
}

type intervalCounts struct {
	Total   int64
	Active  int64
	Deleted int64
}

func countIntervals(db *gorm.DB) (intervalCounts, error) {
	var counts intervalCounts
	err := db.Raw(`
		SELECT 
			COUNT(*) as total,
			COUNT(CASE WHEN is_delete = false THEN 1 END) as active,
			COUNT(CASE WHEN is_delete = true THEN 1 END) as deleted
		FROM intervals
	`).Scan(&counts).Error
	return counts, err
}

// seedIntervals вставляет демо-данные, только если активных интервалов нет
func seedIntervals(db *gorm.DB) (int, error) {
	var active int64
	if err := db.Model(&ds.Interval{}).Where("is_delete = ?", false).Count(&active).Error; err != nil {
		return 0, err
	}
	if active > 0 {
		log.Infof("intervals table already has %d rows, skipping seed", active)
		return 0, nil
	}

	rows := make([]ds.Interval, len(demoIntervals))
	copy(rows, demoIntervals)
	if err := db.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}
