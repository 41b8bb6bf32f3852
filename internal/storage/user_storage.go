package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"MedChat_PatientAssistant/internal/models"

	"modernc.org/sqlite"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)

const timeLayout = time.RFC3339

// sqlite extended result code for a UNIQUE constraint violation.
const sqliteConstraintUnique = 2067

const userColumns = `id, email, password_hash, fullname, age, gender, allergies,
	medications, medical_history, surgical_history, family_history,
	last_checkup, created_at, updated_at`

// CreateUser inserts a new account. Duplicate emails fail atomically on the
// UNIQUE constraint and map to ErrEmailExists.
func (s *Store) CreateUser(user *models.User) error {
	now := time.Now().UTC()
	if user.LastCheckup.IsZero() {
		user.LastCheckup = now
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	stmt, err := s.db.Prepare(`INSERT INTO users(email, password_hash, fullname, age, gender,
		allergies, medications, medical_history, surgical_history, family_history,
		last_checkup, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	result, err := stmt.Exec(
		user.Email, user.PasswordHash, user.Fullname, user.Age, user.Gender,
		encodeList(user.Allergies), encodeList(user.Medications), user.MedicalHistory,
		encodeList(user.SurgicalHistory), user.FamilyHistory,
		user.LastCheckup.Format(timeLayout), now.Format(timeLayout), now.Format(timeLayout),
	)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code() == sqliteConstraintUnique {
				return ErrEmailExists
			}
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetUserByEmail returns the full account, password hash included.
func (s *Store) GetUserByEmail(email string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return scanUser(row)
}

// EmailExists reports whether an account uses the given email.
func (s *Store) EmailExists(email string) (bool, error) {
	var id int64
	row := s.db.QueryRow("SELECT id FROM users WHERE email = ?", email)
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UpdateUser applies the non-nil fields of upd to the account and returns
// the updated profile.
func (s *Store) UpdateUser(email string, upd models.UserUpdate) (models.User, error) {
	assignments := make([]string, 0, 10)
	args := make([]interface{}, 0, 11)

	setColumn := func(column string, value interface{}) {
		assignments = append(assignments, column+" = ?")
		args = append(args, value)
	}

	if upd.Fullname != nil {
		setColumn("fullname", *upd.Fullname)
	}
	if upd.Age != nil {
		setColumn("age", *upd.Age)
	}
	if upd.Gender != nil {
		setColumn("gender", *upd.Gender)
	}
	if upd.Allergies != nil {
		setColumn("allergies", encodeList(*upd.Allergies))
	}
	if upd.Medications != nil {
		setColumn("medications", encodeList(*upd.Medications))
	}
	if upd.MedicalHistory != nil {
		setColumn("medical_history", *upd.MedicalHistory)
	}
	if upd.SurgicalHistory != nil {
		setColumn("surgical_history", encodeList(*upd.SurgicalHistory))
	}
	if upd.FamilyHistory != nil {
		setColumn("family_history", *upd.FamilyHistory)
	}
	if upd.LastCheckup != nil {
		setColumn("last_checkup", upd.LastCheckup.UTC().Format(timeLayout))
	}
	if len(assignments) == 0 {
		return s.GetUserByEmail(email)
	}
	setColumn("updated_at", time.Now().UTC().Format(timeLayout))
	args = append(args, email)

	query := "UPDATE users SET "
	for i, assignment := range assignments {
		if i > 0 {
			query += ", "
		}
		query += assignment
	}
	query += " WHERE email = ?"

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return models.User{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}
	return s.GetUserByEmail(email)
}

// DeleteUser removes the account permanently. No soft delete.
func (s *Store) DeleteUser(email string) error {
	result, err := s.db.Exec("DELETE FROM users WHERE email = ?", email)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdatePassword stores a new password hash. The caller verifies the
// current secret before getting here.
func (s *Store) UpdatePassword(email, newHash string) error {
	result, err := s.db.Exec("UPDATE users SET password_hash = ?, updated_at = ? WHERE email = ?",
		newHash, time.Now().UTC().Format(timeLayout), email)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindOrCreateFederated provisions an account on first federated login.
// Repeated logins with the same email return the existing account and
// never create a duplicate.
func (s *Store) FindOrCreateFederated(email, fullname string) (models.User, error) {
	now := time.Now().UTC().Format(timeLayout)
	_, err := s.db.Exec(`INSERT INTO users(email, password_hash, fullname, age, gender,
		last_checkup, created_at, updated_at)
		VALUES(?, '', ?, 0, ?, ?, ?, ?)
		ON CONFLICT(email) DO NOTHING`,
		email, fullname, models.GenderOther, now, now, now)
	if err != nil {
		return models.User{}, err
	}
	return s.GetUserByEmail(email)
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var allergies, medications, surgicalHistory string
	var lastCheckup, createdAt, updatedAt string

	if err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Fullname, &user.Age, &user.Gender,
		&allergies, &medications, &user.MedicalHistory, &surgicalHistory, &user.FamilyHistory,
		&lastCheckup, &createdAt, &updatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return user, ErrUserNotFound
		}
		return user, err
	}

	var err error
	if user.Allergies, err = decodeList(allergies); err != nil {
		return user, err
	}
	if user.Medications, err = decodeList(medications); err != nil {
		return user, err
	}
	if user.SurgicalHistory, err = decodeList(surgicalHistory); err != nil {
		return user, err
	}
	if user.LastCheckup, err = parseTime(lastCheckup); err != nil {
		return user, err
	}
	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return user, err
	}
	if user.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return user, err
	}
	return user, nil
}

// List columns are stored as JSON text.
func encodeList(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func decodeList(raw string) ([]string, error) {
	var list []string
	if raw == "" {
		return []string{}, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeLayout, raw)
}
