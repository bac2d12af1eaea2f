package queries

import (
	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/pkg/currency"
)

type QuoteQueries interface {
	Selection(sess *session.Session) SelectionView
}

type quoteQueriesImpl struct{}

func NewQuoteQueries() QuoteQueries {
	return &quoteQueriesImpl{}
}

func (quoteQueriesImpl) Selection(sess *session.Session) SelectionView {
	items, total := sess.Selection()

	views := make([]SelectionItemView, 0, len(items))
	for _, item := range items {
		views = append(views, SelectionItemView{
			ID:             item.ID,
			Title:          item.Title,
			Price:          item.Price,
			FormattedPrice: currency.FormatINR(item.Price),
		})
	}

	return SelectionView{
		Items:          views,
		Total:          total,
		FormattedTotal: currency.FormatINR(total),
		Count:          len(views),
	}
}
