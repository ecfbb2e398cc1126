package divergence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	appdivergence "github.com/wareflow/backoffice/application/divergence"
	"github.com/wareflow/backoffice/constant"
	divergencemocks "github.com/wareflow/backoffice/mocks/repository/divergence"
	"github.com/wareflow/backoffice/model"
	cerr "github.com/wareflow/backoffice/utils/errors"
)

func TestDivergenceApp_ReportByReceipt(t *testing.T) {
	t.Run("success: summary rows pass through", func(t *testing.T) {
		repo := divergencemocks.NewDivergenceRepository(t)
		repo.On("SummarizeByReceipt", mock.Anything, uint64(3)).Return([]model.DivergenceSummary{
			{ProductID: 100, ProductName: "Widget", ShortageQty: 10, DamageQty: 5},
		}, nil).Once()

		app := appdivergence.NewDivergenceApp(repo)
		got, err := app.ReportByReceipt(context.Background(), 3)
		if err != nil {
			t.Fatalf("ReportByReceipt() error = %v", err)
		}
		if got.ReceiptID != 3 || len(got.Items) != 1 {
			t.Fatalf("ReportByReceipt() = %+v, want receipt 3 with one item", got)
		}
		if got.Items[0].ShortageQty != 10 || got.Items[0].DamageQty != 5 {
			t.Fatalf("summary = %+v, want shortage 10 damage 5", got.Items[0])
		}
	})

	t.Run("error: repository failure", func(t *testing.T) {
		repo := divergencemocks.NewDivergenceRepository(t)
		repo.On("SummarizeByReceipt", mock.Anything, uint64(3)).Return(nil, errors.New("db error")).Once()

		app := appdivergence.NewDivergenceApp(repo)
		_, err := app.ReportByReceipt(context.Background(), 3)
		if !cerr.Is(err, constant.ErrInternal) {
			t.Fatalf("ReportByReceipt() error = %v, want internal", err)
		}
	})
}

func TestDivergenceApp_ListByPallet(t *testing.T) {
	repo := divergencemocks.NewDivergenceRepository(t)
	repo.On("ListByPallet", mock.Anything, uint64(5)).Return([]model.Divergence{
		{ID: 1, PalletID: 5, ProductID: 100, Type: constant.DivergenceTypeShortage, Quantity: 50},
	}, nil).Once()

	app := appdivergence.NewDivergenceApp(repo)
	got, err := app.ListByPallet(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListByPallet() error = %v", err)
	}
	if len(got) != 1 || got[0].Type != constant.DivergenceTypeShortage {
		t.Fatalf("ListByPallet() = %+v, want one shortage entry", got)
	}
}
