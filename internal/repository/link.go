package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"linkshortener/internal/domain"
)

// queryTimeout bounds every statement issued against the store. The timeout
// cancels the wait on the client side and pgx sends a cancel request to the
// server, but the statement itself is not guaranteed to be aborted.
const queryTimeout = 300 * time.Millisecond

// settingsRowID is the identifier of the single provisioned settings row.
// The value matches the row created by the provisioning scripts.
const settingsRowID = "DEFUALT_SETTINGS"

// ErrTimeout wraps store failures caused by the per-statement deadline, so
// callers can log timeouts apart from other store errors.
var ErrTimeout = errors.New("store operation timed out")

// LinkRepository issues single-statement, timeout-bounded operations against
// the link, click-statistics, and settings tables. Connections are acquired
// from the shared pool per call and released on every exit path.
type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(ctx context.Context, databaseURL string) (*LinkRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &LinkRepository{pool: pool}, nil
}

func (r *LinkRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *LinkRepository) Close() {
	r.pool.Close()
}

func (r *LinkRepository) InsertLink(ctx context.Context, id, targetURL string) (domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var link domain.Link
	err := r.pool.QueryRow(ctx,
		`INSERT INTO links (id, target_url) VALUES ($1, $2) RETURNING id, target_url`,
		id, targetURL,
	).Scan(&link.ID, &link.TargetURL)
	if err != nil {
		return domain.Link{}, classify(err)
	}
	return link, nil
}

// UpdateLink mutates the target of an existing link and returns the updated
// row. When no row matches id the scan fails with pgx.ErrNoRows.
func (r *LinkRepository) UpdateLink(ctx context.Context, id, targetURL string) (domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var link domain.Link
	err := r.pool.QueryRow(ctx,
		`UPDATE links SET target_url = $1 WHERE id = $2 RETURNING id, target_url`,
		targetURL, id,
	).Scan(&link.ID, &link.TargetURL)
	if err != nil {
		return domain.Link{}, classify(err)
	}
	return link, nil
}

func (r *LinkRepository) FindLink(ctx context.Context, id string) (domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var link domain.Link
	err := r.pool.QueryRow(ctx,
		`SELECT id, target_url FROM links WHERE id = $1`,
		id,
	).Scan(&link.ID, &link.TargetURL)
	if err != nil {
		return domain.Link{}, classify(err)
	}
	return link, nil
}

func (r *LinkRepository) InsertClick(ctx context.Context, event domain.ClickEvent) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO link_statistics (link_id, referer, user_agent) VALUES ($1, $2, $3)`,
		event.LinkID, event.Referer, event.UserAgent,
	)
	if err != nil {
		return classify(err)
	}
	return nil
}

// GroupedStatistics returns the click events of a link grouped by
// (referer, user agent), each with its count. A link without clicks yields
// an empty slice, not an error.
func (r *LinkRepository) GroupedStatistics(ctx context.Context, linkID string) ([]domain.CountedLinkStatistic, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT COUNT(*) AS amount, referer, user_agent
		 FROM link_statistics
		 WHERE link_id = $1
		 GROUP BY referer, user_agent`,
		linkID,
	)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	statistics := []domain.CountedLinkStatistic{}
	for rows.Next() {
		var stat domain.CountedLinkStatistic
		if err := rows.Scan(&stat.Amount, &stat.Referer, &stat.UserAgent); err != nil {
			return nil, classify(err)
		}
		statistics = append(statistics, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return statistics, nil
}

// GlobalSettings fetches the provisioned credential row. It is read on every
// privileged request so a rotated key takes effect without a restart.
func (r *LinkRepository) GlobalSettings(ctx context.Context) (domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var settings domain.Settings
	err := r.pool.QueryRow(ctx,
		`SELECT id, encrypted_global_api_key FROM settings WHERE id = $1`,
		settingsRowID,
	).Scan(&settings.ID, &settings.EncryptedGlobalAPIKey)
	if err != nil {
		return domain.Settings{}, classify(err)
	}
	return settings, nil
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	}
	return err
}
