package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FrequencyType selects the calendar unit a recurring item repeats on.
type FrequencyType int

const (
	Daily FrequencyType = iota
	Weekly
	Monthly
	Yearly
)

func (f FrequencyType) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// RecurrenceRule holds the calendar anchors shared by every repeating item.
// Optional anchors are nil when unset.
type RecurrenceRule struct {
	BeginDate             time.Time     `json:"beginDate" validate:"required"`
	FrequencyType         FrequencyType `json:"frequencyType" validate:"min=0,max=3"`
	FrequencyTypeVariable int           `json:"frequencyTypeVariable" validate:"min=0"` // Interval; 0 is treated as 1
	FrequencyDayOfWeek    *int          `json:"frequencyDayOfWeek,omitempty" validate:"omitempty,min=0,max=6"`
	FrequencyWeekOfMonth  *int          `json:"frequencyWeekOfMonth,omitempty" validate:"omitempty,min=0,max=4"`
	FrequencyDayOfMonth   *int          `json:"frequencyDayOfMonth,omitempty" validate:"omitempty,min=1,max=31"`
	FrequencyMonthOfYear  *int          `json:"frequencyMonthOfYear,omitempty" validate:"omitempty,min=1,max=12"`
}

// Interval returns the repeat multiplier, never less than one.
func (r RecurrenceRule) Interval() int {
	if r.FrequencyTypeVariable < 1 {
		return 1
	}
	return r.FrequencyTypeVariable
}

// Expense is a recurring debit against an account.
type Expense struct {
	ExpenseID      string          `json:"expenseID" validate:"required"`
	AccountID      string          `json:"accountID" validate:"required"`
	Title          string          `json:"title" validate:"required"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	RecurrenceRule
}

// Loan is a recurring loan repayment. Amount is the installment.
type Loan struct {
	LoanID         string          `json:"loanID" validate:"required"`
	AccountID      string          `json:"accountID" validate:"required"`
	Title          string          `json:"title" validate:"required"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	RecurrenceRule
}

// Transfer moves money between two accounts on a schedule. The sign seen by an
// account depends on whether it is the source or the destination.
type Transfer struct {
	TransferID           string          `json:"transferID" validate:"required"`
	SourceAccountID      string          `json:"sourceAccountID" validate:"required"`
	DestinationAccountID string          `json:"destinationAccountID" validate:"required,nefield=SourceAccountID"`
	Title                string          `json:"title" validate:"required"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount"`
	RecurrenceRule
}

// Payroll is a single upcoming pay deposit. NetPay is computed upstream.
type Payroll struct {
	PayrollID   string          `json:"payrollID" validate:"required"`
	AccountID   string          `json:"accountID" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	PayDate     time.Time       `json:"payDate" validate:"required"`
	NetPay      decimal.Decimal `json:"netPay"`
}

// Wishlist is a discretionary purchase placed on the timeline once affordable.
// DateAvailable, when set, is the earliest date the purchase may happen.
type Wishlist struct {
	WishlistID    string          `json:"wishlistID" validate:"required"`
	AccountID     string          `json:"accountID" validate:"required"`
	Title         string          `json:"title" validate:"required"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	DateAvailable *time.Time      `json:"dateAvailable,omitempty"`
	Priority      int             `json:"priority"`
}

// SourceID implements projection.Recurring.
func (e Expense) SourceID() string { return e.ExpenseID }

// SourceKind implements projection.Recurring.
func (e Expense) SourceKind() SourceKind { return SourceExpense }

// Rule implements projection.Recurring.
func (e Expense) Rule() RecurrenceRule { return e.RecurrenceRule }

// Describe returns the expense as a debit.
func (e Expense) Describe(string) (string, string, decimal.Decimal) {
	return e.Title, e.Description, e.Amount.Neg()
}

func (l Loan) SourceID() string { return l.LoanID }
func (l Loan) SourceKind() SourceKind { return SourceLoan }
func (l Loan) Rule() RecurrenceRule { return l.RecurrenceRule }

// Describe returns the loan installment as a debit.
func (l Loan) Describe(string) (string, string, decimal.Decimal) {
	return l.Title, l.Description, l.Amount.Neg()
}

func (t Transfer) SourceID() string { return t.TransferID }
func (t Transfer) SourceKind() SourceKind { return SourceTransfer }
func (t Transfer) Rule() RecurrenceRule { return t.RecurrenceRule }

// Describe credits the destination account and debits everyone else.
func (t Transfer) Describe(viewerAccountID string) (string, string, decimal.Decimal) {
	if viewerAccountID == t.DestinationAccountID {
		return t.Title, t.Description, t.Amount
	}
	return t.Title, t.Description, t.Amount.Neg()
}
