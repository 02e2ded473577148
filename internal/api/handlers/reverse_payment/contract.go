package reverse_payment

import (
	"context"

	reversePayment "github.com/m04kA/SMC-RentalService/internal/usecase/reverse_payment"
)

type ReversePaymentUseCase interface {
	Execute(ctx context.Context, req *reversePayment.Request) (*reversePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
