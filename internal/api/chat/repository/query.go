package chatRepository

const (
	queryGetActiveIntents = `
		SELECT
			id,
			name,
			category,
			response,
			keywords,
			priority,
			is_active,
			created_at,
			updated_at
		FROM intents
		WHERE is_active = TRUE
		ORDER BY priority DESC, name ASC
	`

	queryGetAllIntents = `
		SELECT
			id,
			name,
			category,
			response,
			keywords,
			priority,
			is_active,
			created_at,
			updated_at
		FROM intents
		ORDER BY priority DESC, name ASC
	`

	queryGetIntentByName = `
		SELECT
			id,
			name,
			category,
			response,
			keywords,
			priority,
			is_active,
			created_at,
			updated_at
		FROM intents
		WHERE name = :name
	`

	queryCreateIntent = `
		INSERT INTO intents (
			id,
			name,
			category,
			response,
			keywords,
			priority,
			is_active,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:category,
			:response,
			:keywords,
			:priority,
			:is_active,
			:created_at,
			:updated_at
		)
	`

	queryUpdateIntent = `
		UPDATE intents
		SET
			category = :category,
			response = :response,
			keywords = :keywords,
			priority = :priority,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE name = :name
	`

	queryDeactivateIntent = `
		UPDATE intents
		SET
			is_active = FALSE,
			updated_at = NOW()
		WHERE name = :name
	`

	queryCreateConversation = `
		INSERT INTO conversations (
			id,
			employee_id,
			session_id,
			message,
			intent,
			response,
			confidence,
			entities,
			created_at
		) VALUES (
			:id,
			:employee_id,
			:session_id,
			:message,
			:intent,
			:response,
			:confidence,
			:entities,
			:created_at
		)
	`

	queryGetConversationsBySession = `
		SELECT
			id,
			employee_id,
			session_id,
			message,
			intent,
			response,
			confidence,
			entities,
			feedback,
			created_at
		FROM conversations
		WHERE session_id = :session_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountConversationsBySession = `
		SELECT COUNT(*)
		FROM conversations
		WHERE session_id = :session_id
	`

	querySetConversationFeedback = `
		UPDATE conversations
		SET feedback = :feedback
		WHERE id = :id
	`

	queryGetLeaveBalance = `
		SELECT leave_balance
		FROM employees
		WHERE id = :id
	`
)
