package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"vendora-backend/models"
)

// BackupEnvelope is the on-disk backup format: all collections, the two
// singletons and the raw counter value behind a version tag. The version is
// written but never checked on import; shape changes would need real
// migration logic first.
type BackupEnvelope struct {
	Version    int        `json:"version"`
	ExportDate string     `json:"exportDate"`
	Data       BackupData `json:"data"`
}

// BackupData holds the six data sections. Pointers distinguish "absent from
// the input" (left untouched on import) from "present but empty".
type BackupData struct {
	Orders         *[]models.Order        `json:"orders"`
	Markets        *[]models.MarketEvent  `json:"markets"`
	MarketSales    *[]models.MarketSale   `json:"marketSales"`
	Expenses       *[]models.Expense      `json:"expenses"`
	Profile        *models.CompanyProfile `json:"profile"`
	Settings       *models.AppSettings    `json:"settings"`
	InvoiceCounter *string                `json:"invoiceCounter"`
}

const backupVersion = 1

// ExportAll reads every repository and serializes the envelope as
// pretty-printed JSON.
func (r *Repositories) ExportAll(ctx context.Context) (string, error) {
	orders, err := r.Orders.GetAll(ctx)
	if err != nil {
		return "", err
	}
	markets, err := r.Markets.GetAll(ctx)
	if err != nil {
		return "", err
	}
	sales, err := r.MarketSales.GetAll(ctx)
	if err != nil {
		return "", err
	}
	expenses, err := r.Expenses.GetAll(ctx)
	if err != nil {
		return "", err
	}
	profile, err := r.Profile.Get(ctx)
	if err != nil {
		return "", err
	}
	settings, err := r.Settings.Get(ctx)
	if err != nil {
		return "", err
	}
	counter, err := r.Counter.Current(ctx)
	if err != nil {
		return "", err
	}
	counterStr := strconv.Itoa(counter)

	envelope := BackupEnvelope{
		Version:    backupVersion,
		ExportDate: nowISO(),
		Data: BackupData{
			Orders:         &orders,
			Markets:        &markets,
			MarketSales:    &sales,
			Expenses:       &expenses,
			Profile:        &profile,
			Settings:       &settings,
			InvoiceCounter: &counterStr,
		},
	}
	raw, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}
	return string(raw), nil
}

// ImportAll overwrites each store key whose section is present in the input.
// Absent sections are left untouched; partial imports work by omission, not
// by merging.
func (r *Repositories) ImportAll(ctx context.Context, jsonText string) error {
	var envelope BackupEnvelope
	if err := json.Unmarshal([]byte(jsonText), &envelope); err != nil {
		return fmt.Errorf("%w: backup envelope: %v", ErrParse, err)
	}
	data := envelope.Data
	if data.Orders != nil {
		if err := r.Orders.ReplaceAll(ctx, *data.Orders); err != nil {
			return err
		}
	}
	if data.Markets != nil {
		if err := r.Markets.ReplaceAll(ctx, *data.Markets); err != nil {
			return err
		}
	}
	if data.MarketSales != nil {
		if err := r.MarketSales.ReplaceAll(ctx, *data.MarketSales); err != nil {
			return err
		}
	}
	if data.Expenses != nil {
		if err := r.Expenses.ReplaceAll(ctx, *data.Expenses); err != nil {
			return err
		}
	}
	if data.Profile != nil {
		if err := r.Profile.Save(ctx, *data.Profile); err != nil {
			return err
		}
	}
	if data.Settings != nil {
		if err := r.Settings.Save(ctx, *data.Settings); err != nil {
			return err
		}
	}
	if data.InvoiceCounter != nil && *data.InvoiceCounter != "" {
		if err := r.Store.Set(ctx, KeyInvoiceCounter, *data.InvoiceCounter); err != nil {
			return err
		}
	}
	return nil
}

// ResetAll deletes every known data key outright.
func (r *Repositories) ResetAll(ctx context.Context) error {
	return r.Store.RemoveMany(ctx, AllDataKeys)
}
