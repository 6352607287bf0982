package mockdata

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seed record ids referenced across the portal and its tests.
const (
	AdminUserID             = "user-admin-1"
	DonorUserID             = "user-donor-1"
	SecondDonorUserID       = "user-donor-2"
	BeneficiaryUserID       = "user-beneficiary-1"
	SecondBeneficiaryUserID = "user-beneficiary-2"
	ProgramEducation        = "program-education"
	ProgramEnterprise       = "program-entrepreneurship"
	ProgramHealth           = "program-health"
	ProgramLeadership       = "program-leadership"
	DonorEmail              = "donor1@example.org"
	AdminEmail              = "admin@lceo.org"
	BeneficiaryEmail        = "grace.uwera@example.org"
	beneficiaryIDGrace      = "beneficiary-1"
	beneficiaryIDSarah      = "beneficiary-2"
	donorIDMichael          = "donor-1"
	donorIDEmily            = "donor-2"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func rwf(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func usd(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

var users = []User{
	{
		ID: AdminUserID, Email: AdminEmail, FullName: "Sarah Mugabo", Phone: "+250 788 000 001",
		UserType: UserTypeAdmin, Language: LanguageEnglish, IsVerified: true, IsActive: true,
		CreatedAt: date(2022, time.January, 10),
	},
	{
		ID: DonorUserID, Email: DonorEmail, FullName: "Michael Thompson", Phone: "+1 202 555 0143",
		UserType: UserTypeDonor, Language: LanguageEnglish, IsVerified: true, IsActive: true,
		CreatedAt: date(2023, time.March, 2),
	},
	{
		ID: SecondDonorUserID, Email: "donor2@example.org", FullName: "Emily Chen", Phone: "+44 20 7946 0958",
		UserType: UserTypeDonor, Language: LanguageEnglish, IsVerified: true, IsActive: true,
		CreatedAt: date(2023, time.September, 18),
	},
	{
		ID: BeneficiaryUserID, Email: BeneficiaryEmail, FullName: "Uwera Grace", Phone: "+250 788 123 456",
		UserType: UserTypeBeneficiary, Language: LanguageKinyarwanda, IsVerified: true, IsActive: true,
		CreatedAt: date(2023, time.February, 1),
	},
	{
		ID: SecondBeneficiaryUserID, Email: "sarah.mukamana@example.org", FullName: "Mukamana Sarah", Phone: "+250 788 654 321",
		UserType: UserTypeBeneficiary, Language: LanguageKinyarwanda, IsVerified: false, IsActive: true,
		CreatedAt: date(2022, time.June, 12),
	},
}

var programs = []Program{
	{
		ID: ProgramEducation,
		Name: Localized{EN: "Girls Education Support", RW: "Gufasha Abakobwa Kwiga"},
		Description: Localized{
			EN: "School fees, supplies and mentorship that keep girls in secondary school.",
			RW: "Amafaranga y'ishuri, ibikoresho n'ubujyanama bifasha abakobwa kuguma mu ishuri.",
		},
		Category: CategoryEducation, SDGAlignment: []int{4, 5}, StartDate: date(2021, time.January, 1),
		Status: ProgramActive, Budget: usd(120000), FundsAllocated: usd(95000), FundsUtilized: usd(78000),
		BeneficiaryCount: 127, SortOrder: 1,
	},
	{
		ID: ProgramEnterprise,
		Name: Localized{EN: "Women Entrepreneurship", RW: "Kwihangira Imirimo ku Bagore"},
		Description: Localized{
			EN: "Seed capital, business training and weekly coaching for young women.",
			RW: "Igishoro, amahugurwa y'ubucuruzi n'ubujyanama buri cyumweru ku bagore bakiri bato.",
		},
		Category: CategoryEntrepreneurship, SDGAlignment: []int{1, 5, 8}, StartDate: date(2021, time.June, 1),
		Status: ProgramActive, Budget: usd(90000), FundsAllocated: usd(70000), FundsUtilized: usd(45000),
		BeneficiaryCount: 85, SortOrder: 2,
	},
	{
		ID: ProgramHealth,
		Name: Localized{EN: "Health and Wellbeing", RW: "Ubuzima n'Imibereho Myiza"},
		Description: Localized{
			EN: "Reproductive health education and access to community health services.",
			RW: "Inyigisho ku buzima bw'imyororokere no kugera kuri serivisi z'ubuzima.",
		},
		Category: CategoryHealth, SDGAlignment: []int{3, 5}, StartDate: date(2022, time.March, 1),
		Status: ProgramActive, Budget: usd(60000), FundsAllocated: usd(40000), FundsUtilized: usd(36000),
		BeneficiaryCount: 175, SortOrder: 3,
	},
	{
		ID: ProgramLeadership,
		Name: Localized{EN: "Community Leadership", RW: "Ubuyobozi mu Muryango"},
		Description: Localized{
			EN: "Leadership circles that connect graduates with local decision makers.",
			RW: "Amatsinda y'ubuyobozi ahuza abarangije n'abafata ibyemezo mu karere.",
		},
		Category: CategoryCrossCutting, SDGAlignment: []int{5, 16}, StartDate: date(2025, time.January, 1),
		Status: ProgramPlanning, Budget: usd(30000), FundsAllocated: usd(5000), FundsUtilized: usd(0),
		BeneficiaryCount: 45, SortOrder: 4,
	},
}

var beneficiaries = []Beneficiary{
	{
		ID: beneficiaryIDGrace, UserID: BeneficiaryUserID, FullName: "Uwera Grace",
		DateOfBirth: date(2002, time.May, 14),
		Location:    Location{District: "Gasabo", Sector: "Kimironko", Cell: "Bibare", Village: "Inyange"},
		ProgramID:   ProgramEnterprise, Status: BeneficiaryActive, EnrollmentDate: date(2023, time.February, 1),
		StartCapital: rwf(50000), CurrentCapital: rwf(185000), BusinessType: "Tailoring",
		LastTrackingDate: date(2024, time.May, 31), NextTrackingDate: date(2024, time.June, 7),
		ProfileCompletion: 85,
	},
	{
		ID: beneficiaryIDSarah, UserID: SecondBeneficiaryUserID, FullName: "Mukamana Sarah",
		DateOfBirth: date(2000, time.November, 3),
		Location:    Location{District: "Kicukiro", Sector: "Niboye", Cell: "Nyakabanda", Village: "Amahoro"},
		ProgramID:   ProgramEnterprise, Status: BeneficiaryGraduated, EnrollmentDate: date(2022, time.June, 12),
		StartCapital: rwf(40000), CurrentCapital: rwf(420000), BusinessType: "Grocery kiosk",
		LastTrackingDate: date(2024, time.January, 26), NextTrackingDate: date(2024, time.February, 2),
		ProfileCompletion: 100,
	},
	{
		ID: "beneficiary-3", FullName: "Ineza Divine",
		DateOfBirth: date(2008, time.March, 22),
		Location:    Location{District: "Nyarugenge", Sector: "Nyamirambo", Cell: "Mumena", Village: "Rugarama"},
		ProgramID:   ProgramEducation, Status: BeneficiaryActive, EnrollmentDate: date(2023, time.September, 4),
		StartCapital: rwf(0), CurrentCapital: rwf(0), BusinessType: "Student",
		ProfileCompletion: 60, RequiresSpecialAttention: true,
	},
	{
		ID: "beneficiary-4", FullName: "Umutoni Alice",
		DateOfBirth: date(2001, time.July, 9),
		Location:    Location{District: "Bugesera", Sector: "Nyamata", Cell: "Kanazi", Village: "Kayumba"},
		ProgramID:   ProgramHealth, Status: BeneficiaryInactive, EnrollmentDate: date(2022, time.April, 20),
		StartCapital: rwf(30000), CurrentCapital: rwf(30000), BusinessType: "Community health volunteer",
		ProfileCompletion: 40,
	},
}

var donors = []Donor{
	{
		ID: donorIDMichael, UserID: DonorUserID, FullName: "Michael Thompson", Country: "USA",
		PreferredCurrency: CurrencyUSD, TotalDonated: usd(2750), LastDonationDate: date(2024, time.May, 1),
		IsRecurringDonor: true, ReceiveNewsletter: true, CreatedAt: date(2023, time.March, 2),
	},
	{
		ID: donorIDEmily, UserID: SecondDonorUserID, FullName: "Emily Chen", Country: "UK",
		PreferredCurrency: CurrencyUSD, TotalDonated: usd(1000), LastDonationDate: date(2024, time.April, 12),
		Anonymous: true, CreatedAt: date(2023, time.September, 18),
	},
}

var donations = []Donation{
	{
		ID: "donation-1", DonorID: donorIDMichael, ProgramID: ProgramEducation, Amount: usd(250),
		Currency: CurrencyUSD, DonationType: DonationMonthly, PaymentMethod: PaymentCard,
		PaymentStatus: PaymentCompleted, TransactionID: "txn-0001", CreatedAt: date(2024, time.May, 1),
	},
	{
		ID: "donation-2", DonorID: donorIDMichael, ProgramID: ProgramEnterprise, Amount: usd(2000),
		Currency: CurrencyUSD, DonationType: DonationOneTime, PaymentMethod: PaymentBankTransfer,
		PaymentStatus: PaymentCompleted, TransactionID: "txn-0002", Message: "For the seed capital fund.",
		CreatedAt: date(2023, time.December, 15),
	},
	{
		ID: "donation-3", DonorID: donorIDMichael, ProgramID: ProgramEducation, Amount: usd(500),
		Currency: CurrencyUSD, DonationType: DonationOneTime, PaymentMethod: PaymentCard,
		PaymentStatus: PaymentCompleted, TransactionID: "txn-0003", CreatedAt: date(2023, time.March, 2),
	},
	{
		ID: "donation-4", DonorID: donorIDEmily, ProgramID: ProgramHealth, Amount: usd(1000),
		Currency: CurrencyUSD, DonationType: DonationYearly, PaymentMethod: PaymentPaypal,
		PaymentStatus: PaymentCompleted, TransactionID: "txn-0004", Anonymous: true,
		CreatedAt: date(2024, time.April, 12),
	},
}

var goals = []Goal{
	{
		ID: "goal-1", BeneficiaryID: beneficiaryIDGrace, Description: "Buy a second sewing machine",
		Type: GoalBusiness, TargetAmount: rwf(250000), CurrentProgress: rwf(185000),
		TargetDate: date(2024, time.September, 30), Status: GoalInProgress,
	},
	{
		ID: "goal-2", BeneficiaryID: beneficiaryIDGrace, Description: "Save for six months of rent",
		Type: GoalFinancial, TargetAmount: rwf(120000), CurrentProgress: rwf(120000),
		TargetDate: date(2024, time.March, 31), Status: GoalAchieved,
	},
	{
		ID: "goal-3", BeneficiaryID: beneficiaryIDGrace, Description: "Complete bookkeeping course",
		Type: GoalSkills, TargetAmount: rwf(0), CurrentProgress: rwf(0),
		TargetDate: date(2024, time.December, 15), Status: GoalNotStarted,
	},
}

var trackings = []WeeklyTracking{
	{
		ID: "tracking-1", BeneficiaryID: beneficiaryIDGrace, WeekEnding: date(2024, time.May, 24),
		Attendance: AttendancePresent, TaskGiven: "Record every sale", TaskStatus: TaskCompleted,
		Income: rwf(45000), Expenses: rwf(18000), CurrentCapital: rwf(172000),
	},
	{
		ID: "tracking-2", BeneficiaryID: beneficiaryIDGrace, WeekEnding: date(2024, time.May, 31),
		Attendance: AttendanceLate, TaskGiven: "Visit two new suppliers", TaskStatus: TaskInProgress,
		Income: rwf(38000), Expenses: rwf(25000), CurrentCapital: rwf(185000),
		Challenges: "Fabric prices went up",
	},
}

var stories = []Story{
	{
		ID: "story-1",
		Title: Localized{EN: "From one machine to a tailoring shop", RW: "Kuva ku mashini imwe kugera ku iduka"},
		Content: Localized{
			EN: "Grace started with 50,000 RWF of seed capital and now employs two apprentices.",
			RW: "Grace yatangiye afite igishoro cya 50,000 RWF none ubu akoresha abantu babiri.",
		},
		AuthorName: "Uwera Grace", AuthorRole: AuthorBeneficiary, ProgramID: ProgramEnterprise,
		IsFeatured: true, PublishedDate: date(2024, time.April, 2),
	},
	{
		ID: "story-2",
		Title: Localized{EN: "Back in the classroom", RW: "Gusubira mu ishuri"},
		Content: Localized{
			EN: "Divine returned to school after two years away thanks to fee support.",
			RW: "Divine yasubiye mu ishuri nyuma y'imyaka ibiri abifashijwemo n'amafaranga y'ishuri.",
		},
		AuthorName: "Ineza Divine", AuthorRole: AuthorBeneficiary, ProgramID: ProgramEducation,
		IsFeatured: true, PublishedDate: date(2024, time.February, 20),
	},
	{
		ID: "story-3",
		Title: Localized{EN: "Why I give monthly", RW: "Impamvu ntanga buri kwezi"},
		Content: Localized{
			EN: "Seeing weekly progress reports made recurring support an easy choice.",
			RW: "Kubona raporo z'iterambere buri cyumweru byatumye guhora ntanga byoroha.",
		},
		AuthorName: "Michael Thompson", AuthorRole: AuthorDonor,
		PublishedDate: date(2023, time.November, 5),
	},
}
