// Package model defines the canonical record types stored in the encrypted
// ledger. These are the shapes every partition decodes to after
// normalization; raw stored data may be looser (string amounts, legacy
// field names) and is converted by the normalize package.
package model

// AssetType classifies an asset entry.
type AssetType string

const (
	AssetCash             AssetType = "Cash"
	AssetBankAccount      AssetType = "BankAccount"
	AssetRealEstate       AssetType = "RealEstate"
	AssetOrnaments        AssetType = "Ornaments"
	AssetVehicle          AssetType = "Vehicle"
	AssetGovernmentScheme AssetType = "GovernmentScheme"
	AssetOther            AssetType = "Other"
)

// HoldingClass tags an investment holding with its asset class.
type HoldingClass string

const (
	ClassStock        HoldingClass = "Stock"
	ClassMutualFund   HoldingClass = "MutualFund"
	ClassFixedDeposit HoldingClass = "FixedDeposit"
	ClassGoldETF      HoldingClass = "GoldETF"
	ClassCrypto       HoldingClass = "Crypto"
	ClassREIT         HoldingClass = "REIT"
	ClassDebtFund     HoldingClass = "DebtFund"
)

// UnitPriced reports whether the class stores a per-unit price, so its
// effective value is amount x units rather than a lump sum.
func (c HoldingClass) UnitPriced() bool {
	switch c {
	case ClassStock, ClassGoldETF, ClassCrypto, ClassREIT, ClassDebtFund:
		return true
	}
	return false
}

// FundCategory is the market-cap bucket of a mutual fund.
type FundCategory string

const (
	CategoryLargeCap FundCategory = "Large Cap"
	CategoryMidCap   FundCategory = "Mid Cap"
	CategorySmallCap FundCategory = "Small Cap"
	CategoryFlexi    FundCategory = "Flexi/Multicap"
	CategoryOther    FundCategory = "Other"
)

// LoanType classifies a loan entry.
type LoanType string

const (
	LoanPersonal  LoanType = "Personal"
	LoanHome      LoanType = "Home"
	LoanVehicle   LoanType = "Vehicle"
	LoanEducation LoanType = "Education"
	LoanOther     LoanType = "Other"
)

// GoalHorizon buckets goals by time frame.
type GoalHorizon string

const (
	HorizonShort GoalHorizon = "short"
	HorizonMid   GoalHorizon = "mid"
	HorizonLong  GoalHorizon = "long"
)

// NamedAmount is the base row shape shared by income sources, expense-group
// line items and debts.
type NamedAmount struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// IncomeSource is a secondary income row. The stored field is "source"
// rather than "name".
type IncomeSource struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
}

// SavingRow is a savings line with an optional target date.
type SavingRow struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	TargetDate string  `json:"targetDate,omitempty"`
}

// FinanceRecord is the financeData partition: income plus the expense
// groups that feed total-expense and the health score.
type FinanceRecord struct {
	PrimaryIncome float64        `json:"primaryIncome"`
	OtherIncome   []IncomeSource `json:"otherIncome"`
	// TotalIncome is the explicit figure when present; the normalizer
	// derives it from primary + other income otherwise.
	TotalIncome   float64       `json:"totalIncome"`
	Essential     []NamedAmount `json:"essentialExpenses"`
	Discretionary []NamedAmount `json:"discretionaryExpenses"`
	Debts         []NamedAmount `json:"debts"`
	Education     []NamedAmount `json:"educationExpenses"`
	Family        []NamedAmount `json:"familyExpenses"`
	Insurance     []NamedAmount `json:"insuranceExpenses"`
	Miscellaneous []NamedAmount `json:"miscellaneousExpenses"`
	Investments   []NamedAmount `json:"investments"`
	Expenses      []NamedAmount `json:"expenses"`
	Savings       []SavingRow   `json:"savings"`
}

// ExpenseGroups returns every expense-group list in a stable order.
func (f *FinanceRecord) ExpenseGroups() [][]NamedAmount {
	return [][]NamedAmount{
		f.Essential,
		f.Discretionary,
		f.Debts,
		f.Education,
		f.Family,
		f.Insurance,
		f.Miscellaneous,
		f.Investments,
		f.Expenses,
	}
}

// Asset is one entry of the assetsData partition.
type Asset struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Type  AssetType `json:"type"`
	Value float64   `json:"value"`
	Note  string    `json:"note,omitempty"`
}

// Holding is one investment position. Units is zero when the row never
// carried a unit count; EffectiveValue tolerates that.
type Holding struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Class    HoldingClass `json:"class"`
	Amount   float64      `json:"amount"`
	Units    float64      `json:"units,omitempty"`
	Category FundCategory `json:"category,omitempty"`
	FundType string       `json:"fundType,omitempty"`
	Tenure   string       `json:"tenure,omitempty"`
}

// EffectiveValue is the holding's contribution to total investments:
// amount x max(units, 1) for unit-priced classes, plain amount otherwise.
func (h Holding) EffectiveValue() float64 {
	if h.Class.UnitPriced() {
		units := h.Units
		if units < 1 {
			units = 1
		}
		return h.Amount * units
	}
	return h.Amount
}

// InvestmentRecord is the investmentData partition, one list per class.
type InvestmentRecord struct {
	Stocks        []Holding `json:"stocks"`
	MutualFunds   []Holding `json:"mfs"`
	FixedDeposits []Holding `json:"fds"`
	GoldETFs      []Holding `json:"goldEtfs"`
	Cryptos       []Holding `json:"cryptos"`
	REITs         []Holding `json:"reits"`
	DebtFunds     []Holding `json:"debtFunds"`
}

// All returns every holding across classes.
func (r *InvestmentRecord) All() []Holding {
	var out []Holding
	for _, list := range [][]Holding{
		r.Stocks, r.MutualFunds, r.FixedDeposits,
		r.GoldETFs, r.Cryptos, r.REITs, r.DebtFunds,
	} {
		out = append(out, list...)
	}
	return out
}

// Loan is one entry of the loansData partition.
type Loan struct {
	ID      string   `json:"id"`
	Lender  string   `json:"lender"`
	Type    LoanType `json:"type"`
	Amount  float64  `json:"amount"`
	EMI     float64  `json:"emi"`
	Paid    float64  `json:"paid"`
	DueDate string   `json:"dueDate,omitempty"`
}

// Remaining is the outstanding principal, never negative even when paid
// exceeds the original amount.
func (l Loan) Remaining() float64 {
	if rem := l.Amount - l.Paid; rem > 0 {
		return rem
	}
	return 0
}

// InsurancePolicy is one entry of the insurancesData partition.
type InsurancePolicy struct {
	ID           string  `json:"id"`
	Provider     string  `json:"provider"`
	Type         string  `json:"type"`
	Premium      float64 `json:"premium"`
	MaturityDate string  `json:"maturityDate,omitempty"`
}

// Goal is one entry of a goalsData horizon bucket. Goals with a
// non-positive target are stored but excluded from completion math.
type Goal struct {
	ID             string  `json:"id"`
	Goal           string  `json:"goal"`
	TargetAmount   float64 `json:"targetAmount"`
	TimeFrame      string  `json:"timeFrame"`
	CurrentSavings float64 `json:"currentSavings"`
}

// GoalsRecord is the goalsData partition.
type GoalsRecord struct {
	ShortTerm []Goal `json:"shortTermGoals"`
	MidTerm   []Goal `json:"midTermGoals"`
	LongTerm  []Goal `json:"longTermGoals"`
}

// All returns every goal across horizons.
func (g *GoalsRecord) All() []Goal {
	out := make([]Goal, 0, len(g.ShortTerm)+len(g.MidTerm)+len(g.LongTerm))
	out = append(out, g.ShortTerm...)
	out = append(out, g.MidTerm...)
	out = append(out, g.LongTerm...)
	return out
}

// Person is one row of the personalDetails partition. The first row's age
// drives the allocation recommendation.
type Person struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Age        float64 `json:"age"`
	Occupation string  `json:"occupation"`
}

// Account is the account partition: display metadata plus an optional
// monthly budget.
type Account struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Avatar      string  `json:"avatar,omitempty"`
	TotalIncome float64 `json:"totalIncome"`
	Budget      float64 `json:"budget,omitempty"`
}

// FinanceSnapshot is the derived aggregate view. It is recomputed on
// demand and never persisted as authoritative data.
type FinanceSnapshot struct {
	TotalIncome           float64 `json:"totalIncome"`
	TotalExpense          float64 `json:"totalExpense"`
	Savings               float64 `json:"savings"`
	TotalAssets           float64 `json:"totalAssets"`
	TotalInvestments      float64 `json:"totalInvestments"`
	TotalLoanRemaining    float64 `json:"totalLoanRemaining"`
	TotalPremium          float64 `json:"totalPremium"`
	GoalCompletionPercent float64 `json:"goalCompletionPercent"`
	HealthScore           float64 `json:"healthScore"`
}
