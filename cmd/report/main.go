// Command report prints a financial summary for one user straight from an
// encrypted ledger file: snapshot totals, health score with alerts, and
// the allocation comparison. Everything runs locally; no network calls.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fintrack/fintrack/internal/allocation"
	"github.com/fintrack/fintrack/internal/analytics"
	"github.com/fintrack/fintrack/internal/codec"
	"github.com/fintrack/fintrack/internal/ledger"
	"github.com/fintrack/fintrack/internal/normalize"
	"github.com/fintrack/fintrack/internal/store"
)

func main() {
	dataPath := flag.String("data", "ledger.json", "path to the ledger file")
	userID := flag.String("user", "", "user ID to report on")
	excludeFlexi := flag.Bool("exclude-flexi", false, "exclude Flexi/Multicap from the allocation comparison")
	flag.Parse()

	if *userID == "" {
		flag.Usage()
		os.Exit(2)
	}

	secret := os.Getenv("LEDGER_SECRET_KEY")
	c, err := codec.New(secret)
	if err != nil {
		log.Fatalf("LEDGER_SECRET_KEY: %v", err)
	}

	kv, err := store.OpenFileKV(*dataPath)
	if err != nil {
		log.Fatalf("Failed to open ledger file: %v", err)
	}

	l := ledger.New(store.NewRecordStore(kv, c))
	printReport(l, *userID, *excludeFlexi)
}

func printReport(l *ledger.Ledger, userID string, excludeFlexi bool) {
	acct := l.Account(userID)
	s := l.Snapshot(userID)

	fmt.Printf("Ledger report for %s <%s>\n", normalize.FormatName(acct.Name), acct.Email)
	if last := l.LastModified(userID); last != "" {
		fmt.Printf("Last modified: %s\n", last)
	}
	fmt.Println()

	fmt.Printf("Income          %s\n", analytics.FormatINR(s.TotalIncome))
	fmt.Printf("Expenses        %s\n", analytics.FormatINR(s.TotalExpense))
	fmt.Printf("Savings         %s\n", analytics.FormatINR(s.Savings))
	fmt.Printf("Assets          %s\n", analytics.FormatINR(s.TotalAssets))
	fmt.Printf("Investments     %s\n", analytics.FormatINR(s.TotalInvestments))
	fmt.Printf("Loans remaining %s\n", analytics.FormatINR(s.TotalLoanRemaining))
	fmt.Printf("Premiums        %s\n", analytics.FormatINR(s.TotalPremium))
	fmt.Printf("Goal progress   %.1f%%\n", s.GoalCompletionPercent)
	if acct.Budget > 0 {
		fmt.Printf("Budget used     %.1f%%\n", analytics.BudgetUtilizationPercent(&acct, s.TotalExpense))
	}
	fmt.Println()

	fmt.Printf("Health score: %.1f/100 (%s)\n", s.HealthScore, analytics.HealthStatus(s.HealthScore))
	for _, alert := range analytics.Alerts(s) {
		fmt.Printf("  [%s] %s\n", alert.Level, alert.Message)
	}
	fmt.Println()

	age := l.Age(userID)
	if age <= 0 {
		age = allocation.DefaultAge
	}
	fmt.Printf("Mutual-fund allocation vs recommendation (age %.0f):\n", age)
	inv := l.Investments(userID)
	for _, cmp := range allocation.Compare(age, inv.MutualFunds, excludeFlexi) {
		fmt.Printf("  %-15s recommended %5.1f%%  actual %5.1f%%  %s\n",
			cmp.Category, cmp.Recommended, cmp.Actual, cmp.Status)
	}
}
