package equipment

import (
	"database/sql"
	"fmt"
	"log"

	"skill-snap/app/models"
)

// InitEquipmentDB ensures the equipment table exists.
func InitEquipmentDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS equipment (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID REFERENCES schools(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 1,
			room_id UUID REFERENCES rooms(id) ON DELETE SET NULL,
			condition VARCHAR(20) NOT NULL DEFAULT 'good',
			bought_at DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_equipment_room_id ON equipment(room_id)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating equipment tables: %v", err)
			return err
		}
	}
	return nil
}

func GetAllEquipment(db *sql.DB) ([]*models.Equipment, error) {
	query := `SELECT e.id, e.school_id, e.name, e.quantity, e.room_id, e.condition,
			  e.bought_at, e.created_at, e.updated_at, r.id, r.name
			  FROM equipment e
			  LEFT JOIN rooms r ON e.room_id = r.id
			  ORDER BY e.name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Equipment{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		e := &models.Equipment{}
		var roomID, roomName sql.NullString
		err := rows.Scan(&e.ID, &e.SchoolID, &e.Name, &e.Quantity, &e.RoomID,
			&e.Condition, &e.BoughtAt, &e.CreatedAt, &e.UpdatedAt, &roomID, &roomName)
		if err != nil {
			return nil, err
		}

		if roomID.Valid {
			e.Room = &models.Room{
				ID:   roomID.String,
				Name: roomName.String,
			}
		}
		list = append(list, e)
	}
	return list, nil
}

func CreateEquipment(db *sql.DB, e *models.Equipment) error {
	query := `INSERT INTO equipment (school_id, name, quantity, room_id, condition, bought_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, e.SchoolID, e.Name, e.Quantity, e.RoomID, e.Condition, e.BoughtAt).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func UpdateEquipment(db *sql.DB, e *models.Equipment) error {
	query := `UPDATE equipment
			  SET name = $1, quantity = $2, room_id = $3, condition = $4, bought_at = $5, updated_at = NOW()
			  WHERE id = $6`

	result, err := db.Exec(query, e.Name, e.Quantity, e.RoomID, e.Condition, e.BoughtAt, e.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("equipment not found")
	}
	return nil
}

func DeleteEquipment(db *sql.DB, id string) error {
	query := `DELETE FROM equipment WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
