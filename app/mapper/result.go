package mapper

import (
	"github.com/vibast-solutions/ms-go-billpay/app/entity"
	"github.com/vibast-solutions/ms-go-billpay/app/types"
)

func ResultToResponse(item *entity.PaymentResult) *types.PaymentResultResponse {
	if item == nil {
		return nil
	}

	return &types.PaymentResultResponse{
		TrxID:          item.TrxID,
		TransactionID:  item.TransactionID,
		ReferenceText:  item.ReferenceText,
		UserID:         item.UserID,
		ServiceCode:    item.ServiceCode,
		ProviderCode:   item.ProviderCode,
		ProviderName:   item.ProviderName,
		Amount:         item.Amount,
		BillNo:         item.BillNo,
		BillID:         item.BillID,
		BillCycle:      item.BillCycle,
		BillName:       item.BillName,
		BillAddress:    item.BillAddress,
		AdditionalData: item.AdditionalData,
		RespCode:       item.RespCode,
		RespMessage:    item.RespMessage,
	}
}

func ResultFromResponse(payload *types.PaymentResultResponse) *entity.PaymentResult {
	if payload == nil {
		return nil
	}

	return &entity.PaymentResult{
		TrxID:          payload.TrxID,
		TransactionID:  payload.TransactionID,
		ReferenceText:  payload.ReferenceText,
		UserID:         payload.UserID,
		ServiceCode:    payload.ServiceCode,
		ProviderCode:   payload.ProviderCode,
		ProviderName:   payload.ProviderName,
		Amount:         payload.Amount,
		BillNo:         payload.BillNo,
		BillID:         payload.BillID,
		BillCycle:      payload.BillCycle,
		BillName:       payload.BillName,
		BillAddress:    payload.BillAddress,
		AdditionalData: payload.AdditionalData,
		RespCode:       payload.RespCode,
		RespMessage:    payload.RespMessage,
	}
}
