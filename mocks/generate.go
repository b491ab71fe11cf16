package mocks

//go:generate mockgen -destination=storage.go -package=mocks github.com/pribylovaa/chirper/internal/storage Storage,Avatars
//go:generate mockgen -destination=cache.go -package=mocks github.com/pribylovaa/chirper/internal/cache ProfileCache
//go:generate mockgen -destination=events.go -package=mocks github.com/pribylovaa/chirper/internal/events Publisher
//go:generate mockgen -destination=service.go -package=mocks github.com/pribylovaa/chirper/internal/http/handlers Service
//go:generate mockgen -destination=client.go -package=mocks github.com/pribylovaa/chirper/pkg/client/querycache API
