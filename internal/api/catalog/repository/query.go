package catalogRepository

const (
	queryGetAllCategories = `
		SELECT
			id,
			name,
			slug,
			description,
			icon,
			sort_order,
			is_active,
			created_at,
			updated_at
		FROM accessory_categories
		WHERE is_active = TRUE
		ORDER BY sort_order ASC, name ASC
	`

	queryGetCategoryBySlug = `
		SELECT
			id,
			name,
			slug,
			description,
			icon,
			sort_order,
			is_active,
			created_at,
			updated_at
		FROM accessory_categories
		WHERE slug = :slug AND is_active = TRUE
	`

	querySelectModels = `
		SELECT
			m.id,
			m.name,
			m.category_id,
			c.slug AS category_slug,
			m.description,
			m.model_file_key,
			m.thumbnail_key,
			m.quality,
			m.file_size,
			m.polygon_count,
			m.default_scale,
			m.default_pos_x,
			m.default_pos_y,
			m.default_pos_z,
			m.default_rot_x,
			m.default_rot_y,
			m.default_rot_z,
			m.tags,
			m.is_active,
			m.is_featured,
			m.download_count,
			m.usage_count,
			m.average_rating,
			m.created_at,
			m.updated_at
		FROM accessory_models m
		JOIN accessory_categories c ON c.id = m.category_id
		WHERE m.is_active = TRUE
	`

	queryCountModels = `
		SELECT COUNT(*)
		FROM accessory_models m
		JOIN accessory_categories c ON c.id = m.category_id
		WHERE m.is_active = TRUE
	`

	queryGetModelByID = querySelectModels + `
		AND m.id = :id
	`

	queryGetFeaturedModels = querySelectModels + `
		AND m.is_featured = TRUE
		ORDER BY m.created_at DESC
		LIMIT :limit
	`

	queryGetPopularModels = querySelectModels + `
		ORDER BY m.usage_count DESC, m.average_rating DESC
		LIMIT :limit
	`

	queryIncrementUsage = `
		UPDATE accessory_models
		SET usage_count = usage_count + 1,
			updated_at = :updated_at
		WHERE id = :id AND is_active = TRUE
	`

	queryUpdateAverageRating = `
		UPDATE accessory_models
		SET average_rating = :average_rating,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpsertRating = `
		INSERT INTO model_ratings (
			id,
			model_id,
			session_key,
			rating,
			comment,
			created_at
		) VALUES (
			:id,
			:model_id,
			:session_key,
			:rating,
			:comment,
			:created_at
		)
		ON CONFLICT (model_id, session_key) DO UPDATE
		SET rating = EXCLUDED.rating,
			comment = EXCLUDED.comment
	`

	queryGetAverageRating = `
		SELECT COALESCE(AVG(rating), 0)
		FROM model_ratings
		WHERE model_id = :model_id
	`

	queryCreateCollection = `
		INSERT INTO model_collections (
			id,
			name,
			description,
			is_public,
			created_at
		) VALUES (
			:id,
			:name,
			:description,
			:is_public,
			:created_at
		)
	`

	queryGetAllCollections = `
		SELECT
			id,
			name,
			description,
			is_public,
			created_at
		FROM model_collections
		ORDER BY created_at DESC
	`

	queryGetCollectionByID = `
		SELECT
			id,
			name,
			description,
			is_public,
			created_at
		FROM model_collections
		WHERE id = :id
	`

	queryUpdateCollection = `
		UPDATE model_collections
		SET
			name = CASE WHEN :name = '' THEN name ELSE :name END,
			description = CASE WHEN :description = '' THEN description ELSE :description END,
			is_public = :is_public
		WHERE id = :id
	`

	queryDeleteCollection = `
		DELETE FROM model_collections
		WHERE id = :id
	`

	queryGetCollectionModelIDs = `
		SELECT collection_id, model_id
		FROM collection_models
		WHERE collection_id = :collection_id
		ORDER BY added_at ASC
	`

	queryGetAllCollectionModelIDs = `
		SELECT collection_id, model_id
		FROM collection_models
		ORDER BY added_at ASC
	`

	queryAddCollectionModel = `
		INSERT INTO collection_models (
			collection_id,
			model_id,
			added_at
		) VALUES (
			:collection_id,
			:model_id,
			:added_at
		)
		ON CONFLICT (collection_id, model_id) DO NOTHING
	`

	queryRemoveCollectionModel = `
		DELETE FROM collection_models
		WHERE collection_id = :collection_id AND model_id = :model_id
	`
)
