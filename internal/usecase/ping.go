package usecase

import "context"

// PingStorage проверяет доступность хранилища
func (u *URLUsecase) PingStorage(ctx context.Context) error {
	return u.repo.Ping(ctx)
}
