package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("label"); name != "" {
			return name
		}
		return fld.Name
	})
	// decimal.Decimal fields are validated as their float value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

type clientForm struct {
	Nome     string `label:"nome" validate:"required"`
	Telefone string `label:"telefone" validate:"required"`
	Email    string `label:"email" validate:"omitempty,email"`
	Notas    string `label:"notas"`
}

type vehicleForm struct {
	ClienteID string `label:"cliente" validate:"required"`
	Placa     string `label:"placa" validate:"required,min=7,max=8"`
	Modelo    string `label:"modelo" validate:"required"`
	Marca     string `label:"marca"`
	Ano       int    `label:"ano" validate:"omitempty,gte=1900,lte=2100"`
	KmEntrada int    `label:"km" validate:"gte=0"`
}

type partForm struct {
	NomePeca         string          `label:"peça" validate:"required"`
	QuantidadeAtual  int             `label:"quantidade" validate:"gte=0"`
	QuantidadeMinima int             `label:"mínimo" validate:"gte=0"`
	ValorUnitario    decimal.Decimal `label:"valor" validate:"gte=0"`
}

type serviceLine struct {
	Nome  string          `label:"serviço" validate:"required"`
	Valor decimal.Decimal `label:"valor" validate:"gte=0"`
}

type partLine struct {
	PartID     string `label:"peça" validate:"required"`
	Quantidade int    `label:"quantidade" validate:"gt=0"`
}

type orderForm struct {
	VeiculoID   string        `label:"veículo" validate:"required"`
	KmNoServico int           `label:"km" validate:"gte=0"`
	Servicos    []serviceLine `label:"serviços" validate:"dive"`
	Pecas       []partLine    `label:"peças" validate:"dive"`
}

type ruleForm struct {
	NomeServico    string `label:"serviço" validate:"required"`
	IntervaloMeses int    `label:"intervalo" validate:"gt=0"`
	VeiculoID      string `label:"veículo"`
}

type transactionForm struct {
	Descricao string          `label:"descrição" validate:"required"`
	Tipo      string          `label:"tipo" validate:"oneof=RECEITA DESPESA"`
	Categoria string          `label:"categoria" validate:"oneof=OS ESTOQUE ALUGUEL CONTAS PESSOAL OUTROS"`
	Valor     decimal.Decimal `label:"valor" validate:"gt=0"`
}

// validateForm runs the struct tags of form and folds the field errors into
// one common.ErrValidation.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Field()+": "+fieldMessage(e))
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "must be at least " + e.Param() + " characters"
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	default:
		return "invalid value"
	}
}
