package mysqlrepo

import (
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
)

// MySQL server error numbers.
const (
	erDupEntry            = 1062
	erRowIsReferenced     = 1451
	erNoReferencedRow     = 1452
	erNoReferencedRowV1   = 1216
	erRowIsReferencedV1   = 1217
	erBadNull             = 1048
	erWarnDataOutOfRange  = 1264
	erTruncatedWrongValue = 1366
	erDataTooLong         = 1406
)

// translateError maps a driver failure onto the catalog error kinds.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}

	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case erDupEntry:
			return domain.NewError(domain.KindDuplicate, domain.ErrDuplicate.Message, err)
		case erRowIsReferenced, erNoReferencedRow, erNoReferencedRowV1, erRowIsReferencedV1:
			return domain.NewError(domain.KindReferential, domain.ErrReferential.Message, err)
		case erBadNull, erWarnDataOutOfRange, erTruncatedWrongValue, erDataTooLong:
			return domain.NewError(domain.KindValidation, domain.ErrInvalidData.Message, err)
		}
	}

	return domain.NewError(domain.KindPersistence, domain.ErrPersistence.Message, err)
}
