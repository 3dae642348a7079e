package postgres

import (
	"fmt"
	"time"

	"verbum-app/internal/logger"
	"verbum-app/internal/repository/db"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreateContactMessage stores a contact form submission
func (p *PostgresDB) CreateContactMessage(name, email, subject, message string) (*db.ContactMessage, error) {
	conn := p.conn

	msgID := uuid.New().String()
	var createdAt time.Time

	query := `
	INSERT INTO contact_messages (id, name, email, subject, message)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at
	`

	err := conn.QueryRow(query, msgID, name, email, subject, message).Scan(&msgID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("error creating contact message: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{"contact_id": msgID, "email": email}).Info("Stored contact message")

	return &db.ContactMessage{
		ID:        msgID,
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: createdAt,
	}, nil
}
