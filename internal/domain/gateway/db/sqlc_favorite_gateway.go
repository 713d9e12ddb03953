package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"weather-dashboard/internal/domain/entity"
)

// uniqueViolation is the postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type SQLCFavoriteGateway struct {
	DB *sql.DB
}

var _ FavoriteGateway = (*SQLCFavoriteGateway)(nil)

func NewSQLCFavoriteGateway(db *sql.DB) *SQLCFavoriteGateway {
	return &SQLCFavoriteGateway{DB: db}
}

func (gateway *SQLCFavoriteGateway) FindAllByUser(ctx context.Context, userID uint) ([]entity.FavoriteCity, error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT f.id, f.user_id, f.city_name, f.latitude, f.longitude, f.added_at
		FROM favorite_cities f
		WHERE f.user_id = $1
		ORDER BY f.added_at ASC, f.id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]entity.FavoriteCity, 0)
	for rows.Next() {
		var favorite entity.FavoriteCity
		var lat, lon sql.NullFloat64
		if err := rows.Scan(&favorite.ID, &favorite.UserID, &favorite.CityName, &lat, &lon, &favorite.AddedAt); err != nil {
			return nil, err
		}
		favorite.Latitude = nullableFloat(lat)
		favorite.Longitude = nullableFloat(lon)
		favorites = append(favorites, favorite)
	}
	return favorites, rows.Err()
}

func (gateway *SQLCFavoriteGateway) Create(ctx context.Context, favorite entity.FavoriteCity) (*entity.FavoriteCity, error) {
	err := gateway.DB.QueryRowContext(ctx, `
		INSERT INTO favorite_cities (user_id, city_name, latitude, longitude, added_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, added_at`,
		favorite.UserID, favorite.CityName, favorite.Latitude, favorite.Longitude).
		Scan(&favorite.ID, &favorite.AddedAt)

	if isUniqueViolation(err) {
		return nil, entity.ErrFavoriteExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert favorite city: %w", err)
	}
	return &favorite, nil
}

func (gateway *SQLCFavoriteGateway) DeleteByIDAndUser(ctx context.Context, id uint, userID uint) (bool, error) {
	result, err := gateway.DB.ExecContext(ctx,
		`DELETE FROM favorite_cities WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (gateway *SQLCFavoriteGateway) FindDistinctCitiesWithKeysetPagination(ctx context.Context, lastCity string, size int) ([]string, error) {
	query := `
		SELECT DISTINCT f.city_name
		FROM favorite_cities f
		WHERE 1=1`

	args := []interface{}{}
	argCount := 0

	if lastCity != "" {
		argCount++
		query += fmt.Sprintf(" AND f.city_name > $%d", argCount)
		args = append(args, lastCity)
	}

	query += " ORDER BY f.city_name ASC"

	argCount++
	query += fmt.Sprintf(" LIMIT $%d", argCount)
	args = append(args, size)

	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]string, 0, size)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

func nullableFloat(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
