package rooms

import (
	"database/sql"
	"fmt"
	"log"

	"skill-snap/app/models"
)

// Room status values.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

// InitRoomsDB ensures the rooms table exists.
func InitRoomsDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID REFERENCES schools(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			capacity INTEGER NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'available',
			notes TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rooms_school_id ON rooms(school_id)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating rooms tables: %v", err)
			return err
		}
	}
	return nil
}

func GetAllRooms(db *sql.DB) ([]*models.Room, error) {
	query := `SELECT id, school_id, name, capacity, status, notes, created_at, updated_at
			  FROM rooms
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Room{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		r := &models.Room{}
		err := rows.Scan(&r.ID, &r.SchoolID, &r.Name, &r.Capacity, &r.Status,
			&r.Notes, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}

func CreateRoom(db *sql.DB, r *models.Room) error {
	query := `INSERT INTO rooms (school_id, name, capacity, status, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, r.SchoolID, r.Name, r.Capacity, r.Status, r.Notes).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func UpdateRoom(db *sql.DB, r *models.Room) error {
	query := `UPDATE rooms
			  SET name = $1, capacity = $2, status = $3, notes = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := db.Exec(query, r.Name, r.Capacity, r.Status, r.Notes, r.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("room not found")
	}
	return nil
}

func DeleteRoom(db *sql.DB, id string) error {
	query := `DELETE FROM rooms WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
