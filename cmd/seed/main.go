// Seeds the default department list. Safe to run repeatedly: departments
// that already exist (by case-insensitive name) are skipped.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hrlabs/hrms-backend-go/internal/config"
	"github.com/hrlabs/hrms-backend-go/internal/domain/department"
	"github.com/hrlabs/hrms-backend-go/internal/migrations"
	"github.com/hrlabs/hrms-backend-go/internal/pkg/database"
	"github.com/hrlabs/hrms-backend-go/internal/repository/postgresql"
)

var departments = []string{
	"Human Resources",
	"Engineering",
	"Marketing",
	"Sales",
	"Finance",
	"Operations",
	"IT",
	"Design",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	dsn := cfg.DatabaseURL()

	if err := migrations.Run(ctx, dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	// All or nothing: a failure mid-list leaves no partial seed behind.
	tx, err := db.BeginTx(ctx)
	if err != nil {
		log.Fatal("Error starting transaction: ", err)
	}
	defer tx.Rollback(ctx)

	txCtx := postgresql.WithTx(ctx, tx)
	repo := postgresql.NewDepartmentRepository(db)

	for _, name := range departments {
		existing, err := repo.GetByName(txCtx, name)
		if err != nil {
			log.Fatal("Error checking department: ", err)
		}
		if existing != nil {
			fmt.Printf("Department already exists: %s\n", name)
			continue
		}

		if _, err := repo.Create(txCtx, department.Department{Name: name}); err != nil {
			log.Fatal("Error creating department: ", err)
		}
		fmt.Printf("Department created: %s\n", name)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatal("Error committing seed: ", err)
	}

	fmt.Println("Seeding complete")
}
