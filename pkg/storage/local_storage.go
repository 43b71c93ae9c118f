package storage

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/triplematch/setcli/internal/config"
	"github.com/triplematch/setcli/pkg/protocol"
)

const playerStorageFileName = "player.json"

type LocalStorage struct {
	player playerStorage
	folder *configdir.Config
	mutex  *sync.RWMutex
}

type playerStorage struct {
	ID       protocol.PlayerID `json:"id"`
	Name     string            `json:"name"`
	LastRoom string            `json:"lastRoom"`
}

// NewLocalStorage keeps player identity in the user's config directory.
// A non-empty localPath overrides the directory, this is only used in tests.
func NewLocalStorage(localPath string) *LocalStorage {
	var folder *configdir.Config

	if localPath != "" {
		folder = &configdir.Config{
			Path: localPath,
			Type: configdir.Local,
		}
	} else {
		configDirs := configdir.New(config.VendorName, config.ApplicationName)
		folders := configDirs.QueryFolders(configdir.Global)
		folder = folders[0]
	}

	return &LocalStorage{
		folder: folder,
		mutex:  &sync.RWMutex{},
	}
}

func (s *LocalStorage) Initialize() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.readPlayer()
}

func (s *LocalStorage) readPlayer() error {
	if !s.folder.Exists(playerStorageFileName) {
		return nil
	}

	data, err := s.folder.ReadFile(playerStorageFileName)
	if err != nil {
		return errors.Wrap(err, "failed to read player data")
	}

	err = json.Unmarshal(data, &s.player)
	if err == nil {
		return nil
	}

	// Corrupted storage is cleared, not fatal
	return s.resetPlayer()
}

func (s *LocalStorage) savePlayerStorage() error {
	playerJson, err := json.Marshal(s.player)
	if err != nil {
		return errors.Wrap(err, "failed to marshal player storage")
	}

	err = s.folder.WriteFile(playerStorageFileName, playerJson)
	return errors.Wrap(err, "failed to save player storage")
}

func (s *LocalStorage) resetPlayer() error {
	s.player = playerStorage{}
	return s.savePlayerStorage()
}

func (s *LocalStorage) ResetPlayer() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.resetPlayer()
}

func (s *LocalStorage) PlayerID() protocol.PlayerID {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.player.ID
}

func (s *LocalStorage) SetPlayerID(id protocol.PlayerID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.player.ID = id
	return s.savePlayerStorage()
}

func (s *LocalStorage) PlayerName() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.player.Name
}

func (s *LocalStorage) SetPlayerName(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.player.Name = name
	return s.savePlayerStorage()
}

func (s *LocalStorage) LastRoom() protocol.RoomCode {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return protocol.NewRoomCode(s.player.LastRoom)
}

func (s *LocalStorage) SetLastRoom(code protocol.RoomCode) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.player.LastRoom = code.String()
	return s.savePlayerStorage()
}

var _ Service = (*LocalStorage)(nil)
