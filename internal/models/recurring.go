package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceColumns are the schedule columns shared by expenses, loans and transfers.
// Unset anchors are NULL.
type RecurrenceColumns struct {
	BeginDate             time.Time     `db:"begin_date"`
	FrequencyType         int           `db:"frequency_type"`
	FrequencyTypeVariable int           `db:"frequency_type_variable"`
	FrequencyDayOfWeek    sql.NullInt32 `db:"frequency_day_of_week"`
	FrequencyWeekOfMonth  sql.NullInt32 `db:"frequency_week_of_month"`
	FrequencyDayOfMonth   sql.NullInt32 `db:"frequency_day_of_month"`
	FrequencyMonthOfYear  sql.NullInt32 `db:"frequency_month_of_year"`
}

// Expense represents a row of the expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	AccountID   string          `db:"account_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	RecurrenceColumns
}

// Loan represents a row of the loans table.
type Loan struct {
	LoanID      string          `db:"loan_id"`
	AccountID   string          `db:"account_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	RecurrenceColumns
}

// Transfer represents a row of the transfers table.
type Transfer struct {
	TransferID           string          `db:"transfer_id"`
	SourceAccountID      string          `db:"source_account_id"`
	DestinationAccountID string          `db:"destination_account_id"`
	Title                string          `db:"title"`
	Description          string          `db:"description"`
	Amount               decimal.Decimal `db:"amount"`
	RecurrenceColumns
}

// Payroll represents a row of the payrolls table.
type Payroll struct {
	PayrollID   string          `db:"payroll_id"`
	AccountID   string          `db:"account_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	PayDate     time.Time       `db:"pay_date"`
	NetPay      decimal.Decimal `db:"net_pay"`
}

// Wishlist represents a row of the wishlists table.
type Wishlist struct {
	WishlistID    string          `db:"wishlist_id"`
	AccountID     string          `db:"account_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	DateAvailable sql.NullTime    `db:"date_available"`
	Priority      int             `db:"priority"`
}
