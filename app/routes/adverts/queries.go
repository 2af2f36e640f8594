package adverts

import (
	"database/sql"
	"fmt"
	"log"

	"skill-snap/app/models"
)

// InitAdvertsDB ensures the adverts table exists.
func InitAdvertsDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS adverts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID REFERENCES schools(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			body TEXT,
			image_url TEXT,
			starts_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			ends_at TIMESTAMP WITH TIME ZONE,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_adverts_starts_at ON adverts(starts_at)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating adverts tables: %v", err)
			return err
		}
	}
	return nil
}

func GetAllAdverts(db *sql.DB) ([]*models.Advert, error) {
	query := `SELECT id, school_id, title, body, image_url, starts_at, ends_at, is_active, created_at, updated_at
			  FROM adverts
			  ORDER BY starts_at DESC`
	return scanAdverts(db.Query(query))
}

// GetActiveAdverts returns adverts currently inside their display window.
func GetActiveAdverts(db *sql.DB) ([]*models.Advert, error) {
	query := `SELECT id, school_id, title, body, image_url, starts_at, ends_at, is_active, created_at, updated_at
			  FROM adverts
			  WHERE is_active = true
			  AND starts_at <= NOW()
			  AND (ends_at IS NULL OR ends_at > NOW())
			  ORDER BY starts_at DESC`
	return scanAdverts(db.Query(query))
}

func scanAdverts(rows *sql.Rows, err error) ([]*models.Advert, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Advert{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		a := &models.Advert{}
		err := rows.Scan(&a.ID, &a.SchoolID, &a.Title, &a.Body, &a.ImageURL,
			&a.StartsAt, &a.EndsAt, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

func CreateAdvert(db *sql.DB, a *models.Advert) error {
	query := `INSERT INTO adverts (school_id, title, body, image_url, starts_at, ends_at, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, a.SchoolID, a.Title, a.Body, a.ImageURL, a.StartsAt, a.EndsAt, a.IsActive).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func UpdateAdvert(db *sql.DB, a *models.Advert) error {
	query := `UPDATE adverts
			  SET title = $1, body = $2, image_url = $3, starts_at = $4, ends_at = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7`

	result, err := db.Exec(query, a.Title, a.Body, a.ImageURL, a.StartsAt, a.EndsAt, a.IsActive, a.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("advert not found")
	}
	return nil
}

func DeleteAdvert(db *sql.DB, id string) error {
	query := `DELETE FROM adverts WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
