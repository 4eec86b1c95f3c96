package database

import (
	"database/sql"
	"time"

	"videopull/app/models"
)

// CreateEmployee inserts a new employee with an already-hashed password.
// Uniqueness of username and email is enforced by the database; callers
// detect conflicts via IsUniqueViolation.
func CreateEmployee(db *sql.DB, username, email, hashedPassword string) (*models.Employee, error) {
	emp := &models.Employee{
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}

	query := `INSERT INTO employees (username, email, password, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	err := db.QueryRow(query, emp.Username, emp.Email, emp.Password, emp.CreatedAt).Scan(&emp.ID)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func GetEmployeeByUsername(db *sql.DB, username string) (*models.Employee, error) {
	emp := &models.Employee{}
	query := `SELECT id, username, email, password, created_at
			  FROM employees WHERE username = $1`

	err := db.QueryRow(query, username).Scan(
		&emp.ID, &emp.Username, &emp.Email, &emp.Password, &emp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func GetEmployeeByEmail(db *sql.DB, email string) (*models.Employee, error) {
	emp := &models.Employee{}
	query := `SELECT id, username, email, password, created_at
			  FROM employees WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&emp.ID, &emp.Username, &emp.Email, &emp.Password, &emp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func GetEmployeeByID(db *sql.DB, employeeID int64) (*models.Employee, error) {
	emp := &models.Employee{}
	query := `SELECT id, username, email, password, created_at
			  FROM employees WHERE id = $1`

	err := db.QueryRow(query, employeeID).Scan(
		&emp.ID, &emp.Username, &emp.Email, &emp.Password, &emp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func UpdateEmployeePassword(db *sql.DB, employeeID int64, hashedPassword string) error {
	query := `UPDATE employees SET password = $1 WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, employeeID)
	return err
}

// ListEmployees returns all employees ordered by username, for the
// supervisor choice list on the swap form.
func ListEmployees(db *sql.DB) ([]*models.Employee, error) {
	query := `SELECT id, username, email, created_at FROM employees ORDER BY username`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		emp := &models.Employee{}
		if err := rows.Scan(&emp.ID, &emp.Username, &emp.Email, &emp.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func GetEmployeeRoles(db *sql.DB, employeeID int64) ([]*models.Role, error) {
	query := `SELECT r.id, r.name
			  FROM roles r
			  JOIN employee_roles er ON r.id = er.role_id
			  WHERE er.employee_id = $1
			  ORDER BY r.name`

	rows, err := db.Query(query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// AssignRole links an employee to a role. Duplicate assignments violate the
// join table's uniqueness and surface through IsUniqueViolation.
func AssignRole(db *sql.DB, employeeID, roleID int64) error {
	query := `INSERT INTO employee_roles (employee_id, role_id) VALUES ($1, $2)`
	_, err := db.Exec(query, employeeID, roleID)
	return err
}

func GetRoleByName(db *sql.DB, name string) (*models.Role, error) {
	role := &models.Role{}
	err := db.QueryRow(`SELECT id, name FROM roles WHERE name = $1`, name).
		Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, err
	}
	return role, nil
}
