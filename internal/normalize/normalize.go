package normalize

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fintrack/fintrack/internal/model"
)

// Raw shapes are whatever json.Unmarshal produced from a stored partition:
// maps, slices, strings, float64s. Each builder below accepts that, fills
// defaults, and returns a canonical record. Builders are idempotent:
// feeding a canonical record's JSON back through yields an equal record.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// rowID canonicalizes a row identifier. Legacy rows used Date.now()
// numbers; newer rows use UUID strings; rows pasted in from elsewhere may
// have none, in which case one is assigned.
func rowID(v any) string {
	switch id := v.(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return uuid.New().String()
}

// NamedAmounts normalizes an expense-group or debt list. An absent or
// empty list becomes a single empty-shell row so forms and aggregations
// never branch on a missing collection.
func NamedAmounts(raw any) []model.NamedAmount {
	list := asList(raw)
	if len(list) == 0 {
		return []model.NamedAmount{{ID: uuid.New().String()}}
	}
	out := make([]model.NamedAmount, 0, len(list))
	for _, item := range list {
		row := asMap(item)
		out = append(out, model.NamedAmount{
			ID:     rowID(row["id"]),
			Name:   asString(row["name"]),
			Amount: ParseAmount(row["amount"]),
		})
	}
	return out
}

// Finance normalizes the financeData partition. The explicit totalIncome
// field wins when it carries a usable figure; otherwise the total is
// derived from primary plus other income, matching how older records were
// written.
func Finance(raw any) model.FinanceRecord {
	m := asMap(raw)

	rec := model.FinanceRecord{
		PrimaryIncome: ParseAmount(m["primaryIncome"]),
		OtherIncome:   incomeSources(m["otherIncome"]),
		Essential:     NamedAmounts(m["essentialExpenses"]),
		Discretionary: NamedAmounts(m["discretionaryExpenses"]),
		Debts:         NamedAmounts(m["debts"]),
		Education:     NamedAmounts(m["educationExpenses"]),
		Family:        NamedAmounts(m["familyExpenses"]),
		Insurance:     NamedAmounts(m["insuranceExpenses"]),
		Miscellaneous: NamedAmounts(m["miscellaneousExpenses"]),
		Investments:   NamedAmounts(m["investments"]),
		Expenses:      NamedAmounts(m["expenses"]),
		Savings:       savingRows(m["savings"]),
	}

	if explicit := ParseAmount(m["totalIncome"]); explicit > 0 {
		rec.TotalIncome = explicit
	} else {
		rec.TotalIncome = rec.PrimaryIncome
		for _, src := range rec.OtherIncome {
			rec.TotalIncome += src.Amount
		}
	}
	return rec
}

func incomeSources(raw any) []model.IncomeSource {
	list := asList(raw)
	if len(list) == 0 {
		return []model.IncomeSource{{ID: uuid.New().String()}}
	}
	out := make([]model.IncomeSource, 0, len(list))
	for _, item := range list {
		row := asMap(item)
		out = append(out, model.IncomeSource{
			ID:     rowID(row["id"]),
			Source: asString(row["source"]),
			Amount: ParseAmount(row["amount"]),
		})
	}
	return out
}

func savingRows(raw any) []model.SavingRow {
	list := asList(raw)
	if len(list) == 0 {
		return []model.SavingRow{{ID: uuid.New().String()}}
	}
	out := make([]model.SavingRow, 0, len(list))
	for _, item := range list {
		row := asMap(item)
		out = append(out, model.SavingRow{
			ID:         rowID(row["id"]),
			Name:       asString(row["name"]),
			Amount:     ParseAmount(row["amount"]),
			TargetDate: asString(row["targetDate"]),
		})
	}
	return out
}

// Assets normalizes the assetsData partition.
func Assets(raw any) []model.Asset {
	list := asList(raw)
	if len(list) == 0 {
		return []model.Asset{{ID: uuid.New().String(), Type: model.AssetCash}}
	}
	out := make([]model.Asset, 0, len(list))
	for _, item := range list {
		row := asMap(item)
		out = append(out, model.Asset{
			ID:    rowID(row["id"]),
			Name:  asString(row["name"]),
			Type:  ClassifyAssetType(asString(row["type"])),
			Value: ParseAmount(row["value"]),
			Note:  asString(row["note"]),
		})
	}
	return out
}

// Investments normalizes the investmentData partition. Each class list
// keeps its own shape quirks: stocks and the other unit-priced classes
// carry units, mutual funds carry a fund type plus an inferred category,
// fixed deposits carry a tenure.
func Investments(raw any) model.InvestmentRecord {
	m := asMap(raw)
	return model.InvestmentRecord{
		Stocks:        holdings(m["stocks"], model.ClassStock),
		MutualFunds:   holdings(m["mfs"], model.ClassMutualFund),
		FixedDeposits: holdings(m["fds"], model.ClassFixedDeposit),
		GoldETFs:      holdings(m["goldEtfs"], model.ClassGoldETF),
		Cryptos:       holdings(m["cryptos"], model.ClassCrypto),
		REITs:         holdings(m["reits"], model.ClassREIT),
		DebtFunds:     holdings(m["debtFunds"], model.ClassDebtFund),
	}
}

func holdings(raw any, class model.HoldingClass) []model.Holding {
	list := asList(raw)
	if len(list) == 0 {
		h := model.Holding{ID: uuid.New().String(), Class: class}
		if class == model.ClassMutualFund {
			h.Category = model.CategoryOther
		}
		return []model.Holding{h}
	}
	out := make([]model.Holding, 0, len(list))
	for _, item := range list {
		row := asMap(item)
		h := model.Holding{
			ID:     rowID(row["id"]),
			Name:   asString(row["name"]),
			Class:  class,
			Amount: ParseAmount(row["amount"]),
		}
		if class.UnitPriced() {
			h.Units = ParseAmount(row["units"])
		}
		switch class {
		case model.ClassMutualFund:
			h.FundType = asString(row["fundType"])
			h.Category = inferFundCategory(row)
		case model.ClassFixedDeposit:
			h.Tenure = asString(row["tenure"])
		}
		out = append(out, h)
	}
	return out
}

// Loans normalizes the loansData partition.
func Loans(raw any) []model.Loan {
	list := asList(raw)
	if len(list) == 0 {
		return []model.Loan{{ID: uuid.New().String(), Type: model.LoanPersonal}}
	}
	out := make([]model.Loan, 0, len(list))
	for _, item := range list {
		row := asMap(item)
		out = append(out, model.Loan{
			ID:      rowID(row["id"]),
			Lender:  asString(row["lender"]),
			Type:    ClassifyLoanType(asString(row["type"])),
			Amount:  ParseAmount(row["amount"]),
			EMI:     ParseAmount(row["emi"]),
			Paid:    ParseAmount(row["paid"]),
			DueDate: asString(row["dueDate"]),
		})
	}
	return out
}

// Insurances normalizes the insurancesData partition. Older rows stored
// the maturity date under "maturity".
func Insurances(raw any) []model.InsurancePolicy {
	list := asList(raw)
	if len(list) == 0 {
		return []model.InsurancePolicy{{ID: uuid.New().String(), Type: "Life"}}
	}
	out := make([]model.InsurancePolicy, 0, len(list))
	for _, item := range list {
		row := asMap(item)
		maturity := asString(row["maturityDate"])
		if maturity == "" {
			maturity = asString(row["maturity"])
		}
		out = append(out, model.InsurancePolicy{
			ID:           rowID(row["id"]),
			Provider:     asString(row["provider"]),
			Type:         asString(row["type"]),
			Premium:      ParseAmount(row["premium"]),
			MaturityDate: maturity,
		})
	}
	return out
}

// Goals normalizes the goalsData partition. Goals with a non-positive
// target are kept; the aggregation layer excludes them from completion
// math.
func Goals(raw any) model.GoalsRecord {
	m := asMap(raw)
	return model.GoalsRecord{
		ShortTerm: goalRows(m["shortTermGoals"]),
		MidTerm:   goalRows(m["midTermGoals"]),
		LongTerm:  goalRows(m["longTermGoals"]),
	}
}

func goalRows(raw any) []model.Goal {
	list := asList(raw)
	if len(list) == 0 {
		return []model.Goal{{ID: uuid.New().String()}}
	}
	out := make([]model.Goal, 0, len(list))
	for _, item := range list {
		row := asMap(item)
		out = append(out, model.Goal{
			ID:             rowID(row["id"]),
			Goal:           asString(row["goal"]),
			TargetAmount:   ParseAmount(row["targetAmount"]),
			TimeFrame:      asString(row["timeFrame"]),
			CurrentSavings: ParseAmount(row["currentSavings"]),
		})
	}
	return out
}

// People normalizes the personalDetails partition.
func People(raw any) []model.Person {
	list := asList(raw)
	if len(list) == 0 {
		return []model.Person{{ID: uuid.New().String()}}
	}
	out := make([]model.Person, 0, len(list))
	for _, item := range list {
		row := asMap(item)
		out = append(out, model.Person{
			ID:         rowID(row["id"]),
			Name:       asString(row["name"]),
			Age:        ParseAmount(row["age"]),
			Occupation: asString(row["occupation"]),
		})
	}
	return out
}

// Account normalizes the account partition, defaulting to the guest shell.
func Account(raw any) model.Account {
	m := asMap(raw)
	acct := model.Account{
		Name:        asString(m["name"]),
		Email:       asString(m["email"]),
		Avatar:      asString(m["avatar"]),
		TotalIncome: ParseAmount(m["totalIncome"]),
		Budget:      ParseAmount(m["budget"]),
	}
	if strings.TrimSpace(acct.Name) == "" {
		acct.Name = "Guest User"
	}
	if strings.TrimSpace(acct.Email) == "" {
		acct.Email = "guest@example.com"
	}
	return acct
}
