package configs

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Pricing holds the placeholder business rules the storefront ships with.
// The defaults reproduce the demo semantics exactly; deployments override
// them through pricing.yaml or environment variables.
type Pricing struct {
	TaxRate               float64            `yaml:"tax_rate"`
	FlatShippingFee       float64            `yaml:"flat_shipping_fee"`
	FreeShippingThreshold float64            `yaml:"free_shipping_threshold"`
	Coupons               map[string]float64 `yaml:"coupons"`
}

// DefaultPricing returns the demo rules: 7.25% tax, flat $14 shipping with
// free shipping above $300, and a single 10% coupon.
func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:               0.0725,
		FlatShippingFee:       14,
		FreeShippingThreshold: 300,
		Coupons:               map[string]float64{"WEBMART10": 0.10},
	}
}

// LoadPricing layers pricing.yaml (when present) and env overrides on top of
// the defaults. A missing file is not an error; an unreadable one is.
func LoadPricing(path string) (Pricing, error) {
	p := DefaultPricing()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, &p); err != nil {
				return p, errors.Wrapf(err, "failed to parse pricing file %s", path)
			}
		} else if !os.IsNotExist(err) {
			return p, errors.Wrapf(err, "failed to read pricing file %s", path)
		}
	}

	if v := os.Getenv("TAX_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.Wrap(err, "invalid TAX_RATE")
		}
		p.TaxRate = f
	}
	if v := os.Getenv("FLAT_SHIPPING_FEE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.Wrap(err, "invalid FLAT_SHIPPING_FEE")
		}
		p.FlatShippingFee = f
	}
	if v := os.Getenv("FREE_SHIPPING_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.Wrap(err, "invalid FREE_SHIPPING_THRESHOLD")
		}
		p.FreeShippingThreshold = f
	}

	return p, nil
}
