//go:generate mockgen -source=../hall_repository.go          -destination=./mock_hall_repository.go          -package=mocks
//go:generate mockgen -source=../group_repository.go         -destination=./mock_group_repository.go         -package=mocks
//go:generate mockgen -source=../trainer_repository.go       -destination=./mock_trainer_repository.go       -package=mocks
//go:generate mockgen -source=../student_repository.go       -destination=./mock_student_repository.go       -package=mocks
//go:generate mockgen -source=../schedule_item_repository.go -destination=./mock_schedule_item_repository.go -package=mocks
//go:generate mockgen -source=../validator.go                -destination=./mock_validator.go                -package=mocks
//go:generate mockgen -source=../logger.go                   -destination=./mock_logger.go                   -package=mocks
//go:generate mockgen -source=../message_consumer.go         -destination=./mock_message_consumer.go         -package=mocks
//go:generate mockgen -source=../services.go                 -destination=./mock_services.go                 -package=mocks
//go:generate mockgen -source=../entity_cache.go             -destination=./mock_entity_cache.go             -package=mocks

package mocks
