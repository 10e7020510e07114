package normalize

import (
	"strings"

	"github.com/fintrack/fintrack/internal/model"
)

// categoryFields are the legacy field names a mutual fund's category has
// been stored under, in lookup order. subCategory is consulted only when
// none of these yields a known bucket.
var categoryFields = []string{
	"category",
	"fundCategory",
	"fundTypeCategory",
	"fundCategoryType",
	"fundType",
	"categoryType",
}

// ClassifyFundCategory maps a free-text category label onto a market-cap
// bucket by case-insensitive substring. Unknown labels are Other.
func ClassifyFundCategory(raw string) model.FundCategory {
	rc := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case rc == "":
		return model.CategoryOther
	case strings.Contains(rc, "large"):
		return model.CategoryLargeCap
	case strings.Contains(rc, "mid"):
		return model.CategoryMidCap
	case strings.Contains(rc, "small"):
		return model.CategorySmallCap
	case strings.Contains(rc, "flex"), strings.Contains(rc, "multi"):
		return model.CategoryFlexi
	default:
		return model.CategoryOther
	}
}

// inferFundCategory resolves a raw mutual-fund row's category from
// whichever legacy field carries it.
func inferFundCategory(row map[string]any) model.FundCategory {
	for _, field := range categoryFields {
		s, ok := row[field].(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		if cat := ClassifyFundCategory(s); cat != model.CategoryOther {
			return cat
		}
	}
	if s, ok := row["subCategory"].(string); ok {
		if cat := ClassifyFundCategory(s); cat != model.CategoryOther {
			return cat
		}
	}
	return model.CategoryOther
}

// ClassifyAssetType maps a stored asset-type label onto the canonical
// enum. The forms write canonical values; the matcher also tolerates
// spaced or lowercased variants from older exports.
func ClassifyAssetType(raw string) model.AssetType {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "") {
	case "cash":
		return model.AssetCash
	case "bankaccount", "bank":
		return model.AssetBankAccount
	case "realestate", "property":
		return model.AssetRealEstate
	case "ornaments", "gold", "jewellery":
		return model.AssetOrnaments
	case "vehicle":
		return model.AssetVehicle
	case "governmentscheme", "govtscheme":
		return model.AssetGovernmentScheme
	default:
		return model.AssetOther
	}
}

// ClassifyLoanType maps a stored loan-type label onto the canonical enum.
func ClassifyLoanType(raw string) model.LoanType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "personal":
		return model.LoanPersonal
	case "home", "housing", "mortgage":
		return model.LoanHome
	case "vehicle", "car", "auto":
		return model.LoanVehicle
	case "education", "student":
		return model.LoanEducation
	default:
		return model.LoanOther
	}
}
