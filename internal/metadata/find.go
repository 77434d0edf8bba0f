package metadata

import "go.uber.org/zap"

// FindEnvironment locates an environment by name across all accessible
// sources: the user's document first, then each group in membership
// order, environments in document order within each. First match wins;
// a nil Match means the name is absent everywhere.
func (s *Store) FindEnvironment(envName string) (*Match, []Notice, error) {
	merged, notices, err := s.LoadAll()
	if err != nil {
		return nil, notices, err
	}

	for _, env := range merged.User.Environments {
		if env.Name() == envName {
			return &Match{Source: s.UserSource(), Env: env}, notices, nil
		}
	}

	for _, group := range merged.GroupOrder {
		for _, env := range merged.Groups[group].Environments {
			if env.Name() == envName {
				return &Match{Source: GroupSource(group), Env: env}, notices, nil
			}
		}
	}

	s.logger.Debug("environment not found", zap.String("name", envName))
	return nil, notices, nil
}
