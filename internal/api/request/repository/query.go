package requestRepository

const (
	queryCreateRequest = `
		INSERT INTO hr_requests (
			id,
			employee_id,
			type,
			description,
			start_date,
			end_date,
			status,
			created_at,
			updated_at
		) VALUES (
			:id,
			:employee_id,
			:type,
			:description,
			:start_date,
			:end_date,
			:status,
			:created_at,
			:updated_at
		)
	`

	queryGetRequestByID = `
		SELECT
			id,
			employee_id,
			type,
			description,
			start_date,
			end_date,
			status,
			processed_by,
			comment,
			created_at,
			updated_at
		FROM hr_requests
		WHERE id = :id
	`

	queryGetRequestsByEmployee = `
		SELECT
			id,
			employee_id,
			type,
			description,
			start_date,
			end_date,
			status,
			processed_by,
			comment,
			created_at,
			updated_at
		FROM hr_requests
		WHERE employee_id = :employee_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountRequestsByEmployee = `
		SELECT COUNT(*)
		FROM hr_requests
		WHERE employee_id = :employee_id
	`

	queryGetRequestsByStatus = `
		SELECT
			id,
			employee_id,
			type,
			description,
			start_date,
			end_date,
			status,
			processed_by,
			comment,
			created_at,
			updated_at
		FROM hr_requests
		WHERE status = :status
		ORDER BY created_at ASC
		LIMIT :limit OFFSET :offset
	`

	queryCountRequestsByStatus = `
		SELECT COUNT(*)
		FROM hr_requests
		WHERE status = :status
	`

	queryUpdateRequestStatus = `
		UPDATE hr_requests
		SET
			status = :status,
			processed_by = :processed_by,
			comment = :comment,
			updated_at = NOW()
		WHERE id = :id
	`

	queryDecrementLeaveBalance = `
		UPDATE employees
		SET
			leave_balance = leave_balance - :days,
			updated_at = NOW()
		WHERE id = :id AND leave_balance >= :days
	`
)
