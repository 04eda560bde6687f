package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"leadcrm/internal/database"
	"leadcrm/internal/domain"
	"leadcrm/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("APP_DB_DSN")
	if dsn == "" {
		dsn = "leadcrm.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM notes")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Name:         "Administrateur",
		Email:        "admin@leadcrm.fr",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal("create admin failed:", err)
	}
	log.Println("Admin created: admin@leadcrm.fr / admin123")

	agents := []*domain.User{}
	agentNames := []string{"Claire Martin", "Julien Dubois", "Sophie Bernard"}
	for i, name := range agentNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("agent123"), bcrypt.DefaultCost)
		agent := &domain.User{
			Name:         name,
			Email:        fmt.Sprintf("agent%d@leadcrm.fr", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleAgent,
		}
		if err := userRepo.Create(ctx, agent); err != nil {
			log.Fatal("create agent failed:", err)
		}
		agents = append(agents, agent)
	}
	log.Printf("Created %d agents (password: agent123)", len(agents))

	log.Println("Creating leads...")

	now := time.Now()
	nextWeek := now.AddDate(0, 0, 7)
	leads := []*domain.Lead{
		{
			Nom:       "Durand",
			Prenom:    "Pierre",
			Telephone: "+33 6 12 34 56 78",
			NbAppels:  2,
			Etat:      domain.EtatEnCours,
			NF:        3,
			AgentID:   agents[0].ID,
		},
		{
			Nom:             "Lefebvre",
			Prenom:          "Marie",
			Telephone:       "+33 6 98 76 54 32",
			NbAppels:        5,
			DateProchainRDV: &nextWeek,
			Etat:            domain.EtatQualifie,
			NF:              5,
			AgentID:         agents[1].ID,
		},
		{
			Nom:       "Moreau",
			Prenom:    "Luc",
			Telephone: "+33 7 11 22 33 44",
			Etat:      domain.EtatNouveau,
			AgentID:   agents[0].ID,
		},
		{
			Nom:       "Roux",
			Prenom:    "Camille",
			Telephone: "+33 6 55 44 33 22",
			NbAppels:  8,
			Etat:      domain.EtatPerdu,
			NF:        1,
			AgentID:   agents[2].ID,
		},
	}
	for _, l := range leads {
		if l.NbAppels > 0 {
			lastCall := now.AddDate(0, 0, -l.NbAppels)
			l.DateDernierAppel = &lastCall
		}
		if err := leadRepo.Create(ctx, l); err != nil {
			log.Fatal("create lead failed:", err)
		}
	}
	log.Printf("Created %d leads", len(leads))

	log.Println("Creating notes...")
	notes := []*domain.Note{
		{Content: "Rappeler en début de semaine.", LeadID: leads[0].ID, UserID: agents[0].ID},
		{Content: "Budget confirmé, envoyer le devis.", LeadID: leads[1].ID, UserID: agents[1].ID},
	}
	for _, n := range notes {
		if err := noteRepo.Create(ctx, n); err != nil {
			log.Fatal("create note failed:", err)
		}
	}
	log.Printf("Created %d notes", len(notes))

	log.Println("Seed completed")
}
