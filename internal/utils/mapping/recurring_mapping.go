package mapping

import (
	"database/sql"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/SscSPs/money_forecast_app/internal/models"
)

func nullIntPtr(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int32)
	return &v
}

// ToDomainRecurrenceRule converts schedule columns to a domain RecurrenceRule.
func ToDomainRecurrenceRule(m models.RecurrenceColumns) domain.RecurrenceRule {
	return domain.RecurrenceRule{
		BeginDate:             m.BeginDate,
		FrequencyType:         domain.FrequencyType(m.FrequencyType),
		FrequencyTypeVariable: m.FrequencyTypeVariable,
		FrequencyDayOfWeek:    nullIntPtr(m.FrequencyDayOfWeek),
		FrequencyWeekOfMonth:  nullIntPtr(m.FrequencyWeekOfMonth),
		FrequencyDayOfMonth:   nullIntPtr(m.FrequencyDayOfMonth),
		FrequencyMonthOfYear:  nullIntPtr(m.FrequencyMonthOfYear),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:      m.ExpenseID,
		AccountID:      m.AccountID,
		Title:          m.Title,
		Description:    m.Description,
		Amount:         m.Amount,
		RecurrenceRule: ToDomainRecurrenceRule(m.RecurrenceColumns),
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:         m.LoanID,
		AccountID:      m.AccountID,
		Title:          m.Title,
		Description:    m.Description,
		Amount:         m.Amount,
		RecurrenceRule: ToDomainRecurrenceRule(m.RecurrenceColumns),
	}
}

// ToDomainTransfer converts a model Transfer to a domain Transfer
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:           m.TransferID,
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
		Title:                m.Title,
		Description:          m.Description,
		Amount:               m.Amount,
		RecurrenceRule:       ToDomainRecurrenceRule(m.RecurrenceColumns),
	}
}

// ToDomainPayroll converts a model Payroll to a domain Payroll
func ToDomainPayroll(m models.Payroll) domain.Payroll {
	return domain.Payroll{
		PayrollID:   m.PayrollID,
		AccountID:   m.AccountID,
		Title:       m.Title,
		Description: m.Description,
		PayDate:     m.PayDate,
		NetPay:      m.NetPay,
	}
}

// ToDomainWishlist converts a model Wishlist to a domain Wishlist
func ToDomainWishlist(m models.Wishlist) domain.Wishlist {
	d := domain.Wishlist{
		WishlistID:  m.WishlistID,
		AccountID:   m.AccountID,
		Title:       m.Title,
		Description: m.Description,
		Amount:      m.Amount,
		Priority:    m.Priority,
	}
	if m.DateAvailable.Valid {
		available := m.DateAvailable.Time
		d.DateAvailable = &available
	}
	return d
}
