package writerepo

import (
	"context"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"
	"stayops/internal/usecase/shared"
)

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(dbtx db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: dbtx}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *shared.Invoice) error {
	const query = `
		INSERT INTO invoices (
			id, number, reservation_id, room_total, service_total,
			service_tax, overstay_penalty, grand_total, amount_paid, issued_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err := r.db.Exec(ctx, query,
		inv.ID, inv.Number, inv.ReservationID, inv.RoomTotal, inv.ServiceTotal,
		inv.ServiceTax, inv.OverstayPenalty, inv.GrandTotal, inv.AmountPaid, inv.IssuedAt)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("invoice number already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) LastNumber(ctx context.Context, dailyPrefix string) (string, error) {
	const query = `
		SELECT number FROM invoices
		WHERE number LIKE $1 || '%'
		ORDER BY number DESC
		LIMIT 1`

	var number string
	err := r.db.QueryRow(ctx, query, dailyPrefix).Scan(&number)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to find last invoice number", err)
	}
	return number, nil
}
