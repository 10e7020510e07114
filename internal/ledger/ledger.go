// Package ledger is the owning store for a user's financial state. It is
// the single source of truth the views subscribe to: every load decrypts
// and normalizes a partition, every save normalizes and re-encrypts it
// wholesale. Unreadable or absent partitions come back as default shells,
// never nil, so callers do not branch on missing data.
package ledger

import (
	"errors"
	"fmt"
	"log"

	"github.com/fintrack/fintrack/internal/analytics"
	"github.com/fintrack/fintrack/internal/codec"
	"github.com/fintrack/fintrack/internal/model"
	"github.com/fintrack/fintrack/internal/normalize"
	"github.com/fintrack/fintrack/internal/store"
)

// Ledger exposes typed load/save operations over the encrypted record
// store, one pair per partition.
type Ledger struct {
	records *store.RecordStore
}

// New wires a Ledger to its record store.
func New(records *store.RecordStore) *Ledger {
	return &Ledger{records: records}
}

// load fetches a partition's raw decoded JSON. A missing partition is
// normal (first visit); an unreadable one is logged and treated the same,
// so a wrong key or corrupt blob degrades to an empty ledger instead of
// wedging every view.
func (l *Ledger) load(userID, partition string) any {
	var raw any
	err := l.records.Get(userID, partition, &raw)
	switch {
	case err == nil:
		return raw
	case errors.Is(err, store.ErrNotFound):
		return nil
	case codec.IsDecodeError(err):
		log.Printf("[Ledger] unreadable partition %s for user %s: %v", partition, userID, err)
		return nil
	default:
		log.Printf("[Ledger] read %s for user %s: %v", partition, userID, err)
		return nil
	}
}

// Finance loads the financeData partition.
func (l *Ledger) Finance(userID string) model.FinanceRecord {
	return normalize.Finance(l.load(userID, store.PartitionFinance))
}

// SaveFinance normalizes raw input and overwrites the financeData
// partition, returning the canonical record as stored.
func (l *Ledger) SaveFinance(userID string, raw any) (model.FinanceRecord, error) {
	rec := normalize.Finance(raw)
	if err := l.records.Set(userID, store.PartitionFinance, rec); err != nil {
		return rec, fmt.Errorf("ledger: save finance: %w", err)
	}
	return rec, nil
}

// Assets loads the assetsData partition.
func (l *Ledger) Assets(userID string) []model.Asset {
	return normalize.Assets(l.load(userID, store.PartitionAssets))
}

func (l *Ledger) SaveAssets(userID string, raw any) ([]model.Asset, error) {
	rec := normalize.Assets(raw)
	if err := l.records.Set(userID, store.PartitionAssets, rec); err != nil {
		return rec, fmt.Errorf("ledger: save assets: %w", err)
	}
	return rec, nil
}

// Investments loads the investmentData partition.
func (l *Ledger) Investments(userID string) model.InvestmentRecord {
	return normalize.Investments(l.load(userID, store.PartitionInvestments))
}

func (l *Ledger) SaveInvestments(userID string, raw any) (model.InvestmentRecord, error) {
	rec := normalize.Investments(raw)
	if err := l.records.Set(userID, store.PartitionInvestments, rec); err != nil {
		return rec, fmt.Errorf("ledger: save investments: %w", err)
	}
	return rec, nil
}

// Loans loads the loansData partition.
func (l *Ledger) Loans(userID string) []model.Loan {
	return normalize.Loans(l.load(userID, store.PartitionLoans))
}

func (l *Ledger) SaveLoans(userID string, raw any) ([]model.Loan, error) {
	rec := normalize.Loans(raw)
	if err := l.records.Set(userID, store.PartitionLoans, rec); err != nil {
		return rec, fmt.Errorf("ledger: save loans: %w", err)
	}
	return rec, nil
}

// Insurances loads the insurancesData partition.
func (l *Ledger) Insurances(userID string) []model.InsurancePolicy {
	return normalize.Insurances(l.load(userID, store.PartitionInsurances))
}

func (l *Ledger) SaveInsurances(userID string, raw any) ([]model.InsurancePolicy, error) {
	rec := normalize.Insurances(raw)
	if err := l.records.Set(userID, store.PartitionInsurances, rec); err != nil {
		return rec, fmt.Errorf("ledger: save insurances: %w", err)
	}
	return rec, nil
}

// Goals loads the goalsData partition.
func (l *Ledger) Goals(userID string) model.GoalsRecord {
	return normalize.Goals(l.load(userID, store.PartitionGoals))
}

func (l *Ledger) SaveGoals(userID string, raw any) (model.GoalsRecord, error) {
	rec := normalize.Goals(raw)
	if err := l.records.Set(userID, store.PartitionGoals, rec); err != nil {
		return rec, fmt.Errorf("ledger: save goals: %w", err)
	}
	return rec, nil
}

// PersonalDetails loads the personalDetails partition.
func (l *Ledger) PersonalDetails(userID string) []model.Person {
	return normalize.People(l.load(userID, store.PartitionPersonalDetails))
}

func (l *Ledger) SavePersonalDetails(userID string, raw any) ([]model.Person, error) {
	rec := normalize.People(raw)
	if err := l.records.Set(userID, store.PartitionPersonalDetails, rec); err != nil {
		return rec, fmt.Errorf("ledger: save personal details: %w", err)
	}
	return rec, nil
}

// Account loads the account partition, defaulting to the guest shell.
func (l *Ledger) Account(userID string) model.Account {
	return normalize.Account(l.load(userID, store.PartitionAccount))
}

func (l *Ledger) SaveAccount(userID string, raw any) (model.Account, error) {
	rec := normalize.Account(raw)
	if err := l.records.Set(userID, store.PartitionAccount, rec); err != nil {
		return rec, fmt.Errorf("ledger: save account: %w", err)
	}
	return rec, nil
}

// LastModified returns the display timestamp of the user's last
// finance-affecting save, or "" when none exists.
func (l *Ledger) LastModified(userID string) string {
	return l.records.LastModified(userID)
}

// Age is the allocation-driving age: the first personal-details row with a
// positive age, else the default band.
func (l *Ledger) Age(userID string) float64 {
	for _, p := range l.PersonalDetails(userID) {
		if p.Age > 0 {
			return p.Age
		}
	}
	return 0
}

// Snapshot assembles the derived aggregate view across every partition.
// Always recomputed, never persisted.
func (l *Ledger) Snapshot(userID string) model.FinanceSnapshot {
	finance := l.Finance(userID)
	investments := l.Investments(userID)
	goals := l.Goals(userID)
	return analytics.BuildSnapshot(
		&finance,
		l.Assets(userID),
		&investments,
		l.Loans(userID),
		l.Insurances(userID),
		&goals,
	)
}
