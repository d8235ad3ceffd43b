package notificationRepository

const (
	queryCreateNotification = `
		INSERT INTO notifications (
			id,
			employee_id,
			title,
			body,
			is_read,
			created_at
		) VALUES (
			:id,
			:employee_id,
			:title,
			:body,
			:is_read,
			:created_at
		)
	`

	queryGetNotificationsByEmployee = `
		SELECT
			id,
			employee_id,
			title,
			body,
			is_read,
			created_at
		FROM notifications
		WHERE employee_id = :employee_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountNotificationsByEmployee = `
		SELECT COUNT(*)
		FROM notifications
		WHERE employee_id = :employee_id
	`

	queryCountUnreadByEmployee = `
		SELECT COUNT(*)
		FROM notifications
		WHERE employee_id = :employee_id AND is_read = FALSE
	`

	queryMarkNotificationRead = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = :id AND employee_id = :employee_id
	`

	queryMarkAllNotificationsRead = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE employee_id = :employee_id AND is_read = FALSE
	`

	queryCreateDeadline = `
		INSERT INTO deadlines (
			id,
			employee_id,
			type,
			due_date,
			description,
			notify_days_before,
			notified,
			created_at
		) VALUES (
			:id,
			:employee_id,
			:type,
			:due_date,
			:description,
			:notify_days_before,
			:notified,
			:created_at
		)
	`

	queryGetDeadlinesBetween = `
		SELECT
			id,
			employee_id,
			type,
			due_date,
			description,
			notify_days_before,
			notified,
			created_at
		FROM deadlines
		WHERE due_date BETWEEN :from AND :to
		ORDER BY due_date ASC
	`

	queryGetDeadlinesBetweenByEmployee = `
		SELECT
			id,
			employee_id,
			type,
			due_date,
			description,
			notify_days_before,
			notified,
			created_at
		FROM deadlines
		WHERE due_date BETWEEN :from AND :to
			AND employee_id = :employee_id
		ORDER BY due_date ASC
	`

	queryGetDueDeadlines = `
		SELECT
			d.id,
			d.employee_id,
			d.type,
			d.due_date,
			d.description,
			d.notify_days_before,
			d.notified,
			d.created_at,
			e.email AS employee_email
		FROM deadlines d
		JOIN employees e ON e.id = d.employee_id
		WHERE d.notified = FALSE
			AND d.due_date <= :until
		ORDER BY d.due_date ASC
	`

	queryMarkDeadlineNotified = `
		UPDATE deadlines
		SET notified = TRUE
		WHERE id = :id
	`
)
