package ports

// Repositories — набор хранилищ всех сущностей.
// Собирается драйвером хранилища (memory, postgres).
type Repositories struct {
	Groups        GroupRepository
	Halls         HallRepository
	ScheduleItems ScheduleItemRepository
	Students      StudentRepository
	Trainers      TrainerRepository
}
