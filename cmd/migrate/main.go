package main

import (
	"flag"
	"log"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/config"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/migration"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "configs/config.local.yaml", "config file path")
	rollback := flag.Bool("rollback", false, "drop every managed table")
	seed := flag.Bool("seed", false, "insert the demo user and group when the database is empty")
	verify := flag.Bool("verify", false, "report managed tables missing from the database")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	if files := config.LoadDotEnv(); len(files) == 0 {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logLevel := gormlogger.Warn
	if *verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB: %v", err)
	}
	defer sqlDB.Close()

	switch {
	case *verify:
		if missing := migration.Missing(db); len(missing) > 0 {
			log.Fatalf("Missing tables: %v", missing)
		}
		log.Println("All tables present")
		return
	case *rollback:
		if err := migration.Rollback(db); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Println("Rollback completed")
		return
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration completed")

	if *seed {
		if err := migration.SeedLocal(db); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		log.Println("Seed completed")
	}
}
