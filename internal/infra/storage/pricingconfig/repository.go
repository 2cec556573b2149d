package pricingconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/pkg/dbmetrics"
	"github.com/swiftmoving/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий версионируемых тарифных сеток
// Тарифная сетка хранится документом в JSONB колонке: структура вложенная,
// а читается и пишется она всегда целиком
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифных сеток
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive возвращает текущую активную тарифную сетку
// Вызывается заново при каждом расчете: кеширование здесь привело бы
// к расхождению цен между каналами после обновления тарифов
func (r *Repository) GetActive(ctx context.Context) (*domain.PricingConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "version", "data", "created_at").
		From("pricing_configs").
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	var (
		id        int64
		version   int
		data      []byte
		createdAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(&id, &version, &data, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan config: %v", ErrScanRow, err)
	}

	var cfg domain.PricingConfiguration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: GetActive - unmarshal config: %v", ErrScanRow, err)
	}

	cfg.ID = id
	cfg.Version = version
	cfg.CreatedAt = createdAt.Time

	return &cfg, nil
}

// ReplaceActive деактивирует текущую тарифную сетку и вставляет новую версию
// Обязан вызываться внутри сериализуемой транзакции: инвариант
// "ровно одна активная версия" должен сохраняться при конкурентных обновлениях
func (r *Repository) ReplaceActive(ctx context.Context, cfg *domain.PricingConfiguration) (*domain.PricingConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceActive - marshal config: %v", ErrEncodeConfig, err)
	}

	deactivate, args, err := psqlbuilder.Update("pricing_configs").
		Set("active", false).
		Where(squirrel.Eq{"active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceActive - build deactivate query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deactivate, args...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceActive - deactivate current config: %v", ErrExecQuery, err)
	}

	insert, args, err := psqlbuilder.Insert("pricing_configs").
		Columns("version", "active", "data").
		Values(squirrel.Expr("(SELECT COALESCE(MAX(version), 0) + 1 FROM pricing_configs)"), true, data).
		Suffix("RETURNING id, version, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceActive - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, insert, args...).Scan(&cfg.ID, &cfg.Version, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceActive - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	return cfg, nil
}
