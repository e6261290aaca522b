package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"github.com/bigredeye/students/internal/models"
)

var ErrNotFound = errors.New("student not found")

type DataBase struct {
	*gorm.DB
}

// FieldTooLong is returned when a value does not fit its column.
type FieldTooLong struct {
	nested error
}

func (e *FieldTooLong) Error() string {
	return e.nested.Error()
}

func (e *FieldTooLong) Unwrap() error {
	return e.nested
}

func IsFieldTooLong(err error) bool {
	fieldTooLong := &FieldTooLong{}
	return errors.As(err, &fieldTooLong)
}

// Postgres reports varchar overflow as string_data_right_truncation,
// sqlite does not enforce varchar sizes at all.
func isStringTruncation(err error) bool {
	var perr *pgconn.PgError
	if errors.As(err, &perr) {
		return perr.Code == "22001"
	}
	return false
}

func wrapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isStringTruncation(err):
		return &FieldTooLong{err}
	default:
		return err
	}
}

func OpenDataBase(logger *zap.Logger, dialector gorm.Dialector) (*DataBase, error) {
	zapLogger := zapgorm2.New(logger.Named("gorm"))
	zapLogger.SetAsDefault()
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: zapLogger,
	})
	if err != nil {
		return nil, err
	}

	// In-memory sqlite databases live as long as their connection.
	if dialector.Name() == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(&models.Student{})
	if err != nil {
		return nil, err
	}

	return &DataBase{db}, nil
}

func (db *DataBase) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DataBase) ListStudents() (students []models.Student, err error) {
	students = make([]models.Student, 0)
	err = db.Order("id").Find(&students).Error
	if err != nil {
		students = nil
	}
	return
}

func (db *DataBase) FindStudentByID(id uint) (*models.Student, error) {
	var student models.Student
	err := db.First(&student, id).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return &student, nil
}

func (db *DataBase) AddStudent(fields models.StudentFields) (*models.Student, error) {
	student := &models.Student{StudentFields: fields}
	err := db.Create(student).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return student, nil
}

// UpdateStudent replaces every field of the row, zero values included.
func (db *DataBase) UpdateStudent(id uint, fields models.StudentFields) (*models.Student, error) {
	res := db.Model(&models.Student{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       fields.Name,
			"department": fields.Department,
			"rollno":     fields.RollNo,
		})
	if res.Error != nil {
		return nil, wrapError(res.Error)
	}
	if res.RowsAffected < 1 {
		return nil, fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	return &models.Student{ID: id, StudentFields: fields}, nil
}

func (db *DataBase) RemoveStudent(id uint) error {
	res := db.Delete(&models.Student{}, id)
	if res.Error != nil {
		return wrapError(res.Error)
	}
	if res.RowsAffected < 1 {
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	return nil
}
