// Package mockdata holds the portal's static in-memory records.
//
// Records are built once at package load and never written back. Every
// exported accessor returns copies so callers cannot mutate the shared set.
package mockdata

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserType identifies which portal a user belongs to.
type UserType string

const (
	UserTypeAdmin       UserType = "admin"
	UserTypeDonor       UserType = "donor"
	UserTypeBeneficiary UserType = "beneficiary"
)

// ParseUserType normalizes a raw role name. The second result is false for
// unknown roles.
func ParseUserType(raw string) (UserType, bool) {
	switch UserType(raw) {
	case UserTypeAdmin, UserTypeDonor, UserTypeBeneficiary:
		return UserType(raw), true
	default:
		return "", false
	}
}

// Language is a display language code.
type Language string

const (
	LanguageEnglish     Language = "en"
	LanguageKinyarwanda Language = "rw"
)

// BeneficiaryStatus tracks a participant through a program.
type BeneficiaryStatus string

const (
	BeneficiaryActive    BeneficiaryStatus = "active"
	BeneficiaryGraduated BeneficiaryStatus = "graduated"
	BeneficiaryInactive  BeneficiaryStatus = "inactive"
)

// ParseBeneficiaryStatus validates a raw status value.
func ParseBeneficiaryStatus(raw string) (BeneficiaryStatus, bool) {
	switch BeneficiaryStatus(raw) {
	case BeneficiaryActive, BeneficiaryGraduated, BeneficiaryInactive:
		return BeneficiaryStatus(raw), true
	default:
		return "", false
	}
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

type TaskStatus string

const (
	TaskCompleted  TaskStatus = "completed"
	TaskInProgress TaskStatus = "in_progress"
	TaskNotDone    TaskStatus = "not_done"
)

type GoalType string

const (
	GoalFinancial GoalType = "financial"
	GoalBusiness  GoalType = "business"
	GoalEducation GoalType = "education"
	GoalPersonal  GoalType = "personal"
	GoalSkills    GoalType = "skills"
)

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalAchieved   GoalStatus = "achieved"
	GoalAbandoned  GoalStatus = "abandoned"
)

type ProgramCategory string

const (
	CategoryEducation        ProgramCategory = "education"
	CategoryEntrepreneurship ProgramCategory = "entrepreneurship"
	CategoryHealth           ProgramCategory = "health"
	CategoryCrossCutting     ProgramCategory = "cross_cutting"
)

type ProgramStatus string

const (
	ProgramPlanning  ProgramStatus = "planning"
	ProgramActive    ProgramStatus = "active"
	ProgramCompleted ProgramStatus = "completed"
	ProgramArchived  ProgramStatus = "archived"
)

type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentMobileMoney  PaymentMethod = "mobile_money"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentPaypal       PaymentMethod = "paypal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type DonationType string

const (
	DonationOneTime   DonationType = "one_time"
	DonationMonthly   DonationType = "monthly"
	DonationQuarterly DonationType = "quarterly"
	DonationYearly    DonationType = "yearly"
)

type Currency string

const (
	CurrencyRWF Currency = "RWF"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

type AuthorRole string

const (
	AuthorBeneficiary AuthorRole = "beneficiary"
	AuthorDonor       AuthorRole = "donor"
	AuthorStaff       AuthorRole = "staff"
)

// Localized carries the English and Kinyarwanda variants of a string.
type Localized struct {
	EN string `json:"en"`
	RW string `json:"rw"`
}

// In returns the variant for lang, falling back to English.
func (l Localized) In(lang Language) string {
	if lang == LanguageKinyarwanda && l.RW != "" {
		return l.RW
	}
	return l.EN
}

// User is an account in any of the three portals.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Phone      string    `json:"phone"`
	UserType   UserType  `json:"userType"`
	Language   Language  `json:"language"`
	IsVerified bool      `json:"isVerified"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Location is a Rwandan administrative address.
type Location struct {
	District string
	Sector   string
	Cell     string
	Village  string
}

// Beneficiary is a program participant record.
type Beneficiary struct {
	ID                       string
	UserID                   string
	FullName                 string
	DateOfBirth              time.Time
	Location                 Location
	ProgramID                string
	Status                   BeneficiaryStatus
	EnrollmentDate           time.Time
	StartCapital             decimal.Decimal
	CurrentCapital           decimal.Decimal
	BusinessType             string
	LastTrackingDate         time.Time
	NextTrackingDate         time.Time
	ProfileCompletion        int
	RequiresSpecialAttention bool
}

// Donor is a contributor record with donation history.
type Donor struct {
	ID                string
	UserID            string
	FullName          string
	Country           string
	PreferredCurrency Currency
	TotalDonated      decimal.Decimal
	LastDonationDate  time.Time
	IsRecurringDonor  bool
	Anonymous         bool
	ReceiveNewsletter bool
	CreatedAt         time.Time
}

// Program is a named intervention category beneficiaries are enrolled in.
type Program struct {
	ID               string
	Name             Localized
	Description      Localized
	Category         ProgramCategory
	SDGAlignment     []int
	StartDate        time.Time
	Status           ProgramStatus
	Budget           decimal.Decimal
	FundsAllocated   decimal.Decimal
	FundsUtilized    decimal.Decimal
	BeneficiaryCount int
	SortOrder        int
}

// FundedPercent is utilized funds over budget, rounded down to a whole percent.
func (p Program) FundedPercent() int64 {
	if p.Budget.IsZero() {
		return 0
	}
	return p.FundsUtilized.Mul(decimal.NewFromInt(100)).Div(p.Budget).Floor().IntPart()
}

// Donation is one completed or pending gift.
type Donation struct {
	ID            string
	DonorID       string
	ProgramID     string
	Amount        decimal.Decimal
	Currency      Currency
	DonationType  DonationType
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	TransactionID string
	Anonymous     bool
	Message       string
	CreatedAt     time.Time
}

// Goal is a beneficiary's tracked objective.
type Goal struct {
	ID              string
	BeneficiaryID   string
	Description     string
	Type            GoalType
	TargetAmount    decimal.Decimal
	CurrentProgress decimal.Decimal
	TargetDate      time.Time
	Status          GoalStatus
}

// ProgressPercent is progress over target, capped at 100.
func (g Goal) ProgressPercent() int64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	pct := g.CurrentProgress.Mul(decimal.NewFromInt(100)).Div(g.TargetAmount).Floor().IntPart()
	if pct > 100 {
		return 100
	}
	return pct
}

// WeeklyTracking is a periodic self-reported beneficiary status form.
type WeeklyTracking struct {
	ID             string
	BeneficiaryID  string
	WeekEnding     time.Time
	Attendance     AttendanceStatus
	TaskGiven      string
	TaskStatus     TaskStatus
	Income         decimal.Decimal
	Expenses       decimal.Decimal
	CurrentCapital decimal.Decimal
	Challenges     string
	Notes          string
}

// Story is a published impact story.
type Story struct {
	ID            string
	Title         Localized
	Content       Localized
	AuthorName    string
	AuthorRole    AuthorRole
	ProgramID     string
	IsFeatured    bool
	PublishedDate time.Time
}

// DashboardStats aggregates the admin overview figures.
type DashboardStats struct {
	TotalBeneficiaries     int
	ActiveBeneficiaries    int
	GraduatedBeneficiaries int
	TotalDonors            int
	TotalRaised            decimal.Decimal
	ActivePrograms         int
	RecentDonations        []Donation
	ProgramDistribution    []ProgramShare
}

// ProgramShare counts beneficiaries enrolled per program category.
type ProgramShare struct {
	Category ProgramCategory
	Count    int
}
