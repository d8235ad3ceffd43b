package authRepository

const (
	queryCreateEmployee = `
		INSERT INTO employees (
			id,
			email,
			full_name,
			password,
			role,
			department,
			leave_balance,
			hire_date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:email,
			:full_name,
			:password,
			:role,
			:department,
			:leave_balance,
			:hire_date,
			:created_at,
			:updated_at
		)
	`

	queryGetEmployeeByID = `
		SELECT
			id,
			email,
			full_name,
			password,
			role,
			department,
			leave_balance,
			hire_date,
			created_at,
			updated_at
		FROM employees
		WHERE id = :id
	`

	queryGetEmployeeByEmail = `
		SELECT
			id,
			email,
			full_name,
			password,
			role,
			department,
			leave_balance,
			hire_date,
			created_at,
			updated_at
		FROM employees
		WHERE email = :email
	`

	queryUpdatePassword = `
		UPDATE employees
		SET
			password = :password,
			updated_at = NOW()
		WHERE id = :id
	`
)
