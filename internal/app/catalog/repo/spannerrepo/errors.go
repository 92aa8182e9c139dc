package spannerrepo

import (
	"errors"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
)

// translateError maps a Spanner failure onto the catalog error kinds.
// Errors that already carry a kind pass through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}

	switch spanner.ErrCode(err) {
	case codes.AlreadyExists:
		return domain.NewError(domain.KindDuplicate, domain.ErrDuplicate.Message, err)
	case codes.FailedPrecondition:
		if strings.Contains(strings.ToLower(spanner.ErrDesc(err)), "foreign key") {
			return domain.NewError(domain.KindReferential, domain.ErrReferential.Message, err)
		}
	case codes.InvalidArgument, codes.OutOfRange:
		return domain.NewError(domain.KindValidation, domain.ErrInvalidData.Message, err)
	}

	return domain.NewError(domain.KindPersistence, domain.ErrPersistence.Message, err)
}
