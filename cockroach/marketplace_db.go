package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/types"
	"github.com/nicolasparada/go-db"
)

// JobPosting reads the marketplace job posting.
// Deleted postings are returned with Deleted set.
func (c *Cockroach) JobPosting(ctx context.Context, jobPostingID string) (types.JobPosting, error) {
	const query = `
		SELECT id, title, state, company_id, owner_user_id, deleted_at IS NOT NULL AS deleted
		FROM job_postings
		WHERE id = @job_posting_id`

	args := pgx.StrictNamedArgs{"job_posting_id": jobPostingID}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.JobPosting])
	if db.IsNotFoundError(err) {
		return out, errs.JobPostingNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql select job posting: %w", err)
	}

	return out, nil
}

func (c *Cockroach) Candidate(ctx context.Context, candidateID string) (types.Candidate, error) {
	const query = `
		SELECT id, user_id, deleted_at IS NOT NULL AS deleted
		FROM candidates
		WHERE id = @candidate_id`

	args := pgx.StrictNamedArgs{"candidate_id": candidateID}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Candidate])
	if db.IsNotFoundError(err) {
		return out, errs.CandidateNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql select candidate: %w", err)
	}

	return out, nil
}

// CompanyStaff are the active staff user IDs of the company.
func (c *Cockroach) CompanyStaff(ctx context.Context, companyID string) ([]string, error) {
	const query = `
		SELECT user_id
		FROM company_staff
		WHERE company_id = @company_id
			AND active
		ORDER BY user_id`

	args := pgx.StrictNamedArgs{"company_id": companyID}
	out, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("sql select company staff: %w", err)
	}

	return out, nil
}
