package backend

import (
	"context"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/backend/internal/database"
	"vincit.fi/eink-slideshow/backend/internal/display"
	"vincit.fi/eink-slideshow/backend/internal/history"
	"vincit.fi/eink-slideshow/backend/internal/imageloader"
	"vincit.fi/eink-slideshow/backend/internal/library"
	"vincit.fi/eink-slideshow/backend/internal/normalizer"
	"vincit.fi/eink-slideshow/backend/internal/slideshow"
	"vincit.fi/eink-slideshow/common/config"
	"vincit.fi/eink-slideshow/common/event"
	"vincit.fi/eink-slideshow/common/logger"
)

type Stores struct {
	StatusStore *database.StatusStore
	FrameStore  *database.FrameStore
	db          *database.Database
}

func (s *Stores) Close() {
	s.db.Close()
}

type Services struct {
	Recorder   *history.Recorder
	Loader     api.ImageLoader
	Normalizer api.Normalizer
	Display    api.Display
	Slideshow  *slideshow.Slideshow
}

func (s *Services) Close() {
	if s.Display != nil {
		if err := s.Display.Close(); err != nil {
			logger.Error.Print("Error while closing display ", err)
		}
	}
}

type Brokers struct {
	Broker *event.Broker
}

func (s *Brokers) Close() {
	s.Broker.Close()
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the status database. An empty file name keeps the
// status in memory for the lifetime of the process.
func InitializeStores(databaseFile string) (*Stores, error) {
	logger.Debug.Printf("Initialize databases...")
	var db *database.Database
	if databaseFile == "" {
		inMemory, err := database.NewInMemoryDatabase()
		if err != nil {
			return nil, err
		}
		db = inMemory
	} else {
		db = database.NewDatabase()
		if err := db.InitializeForFile(databaseFile); err != nil {
			return nil, apitype.NewConfigurationError("could not open database %s: %s", databaseFile, err)
		}
		if _, err := db.Migrate(); err != nil {
			db.Close()
			return nil, err
		}
	}

	stores := &Stores{
		StatusStore: database.NewStatusStore(db),
		FrameStore:  database.NewFrameStore(db),
		db:          db,
	}
	logger.Debug.Printf("Stores and databases initialized")
	return stores, nil
}

func OpenDisplay(deviceConfig *config.DeviceConfig) (api.Display, error) {
	values := deviceConfig.Values()
	return display.Open(display.Options{
		Driver:           display.Driver(values.Display.Driver),
		Resolution:       deviceConfig.GetResolution(),
		PreviewFile:      values.Display.PreviewFile,
		SpiPort:          values.Display.SpiPort,
		CurrentImageFile: values.CurrentImageFile,
	})
}

func InitializeServices(deviceConfig *config.DeviceConfig, stores *Stores, brokers *Brokers) (*Services, error) {
	logger.Debug.Printf("Initialize services...")
	if err := deviceConfig.Validate(); err != nil {
		return nil, err
	}
	settings, err := deviceConfig.DisplaySettings()
	if err != nil {
		return nil, err
	}

	values := deviceConfig.Values()
	recorder := history.NewRecorder(stores.StatusStore, stores.FrameStore)
	recorder.SubscribeTo(brokers.Broker)

	imageLoader := imageloader.NewImageLoader(values.ExifOrientation)
	imageNormalizer := normalizer.NewNormalizer()
	output, err := OpenDisplay(deviceConfig)
	if err != nil {
		return nil, err
	}

	services := &Services{
		Recorder:   recorder,
		Loader:     imageLoader,
		Normalizer: imageNormalizer,
		Display:    output,
		Slideshow: slideshow.NewSlideshow(slideshow.Options{
			Directory:      values.ImageDir,
			Interval:       values.Interval,
			SkipUnreadable: values.SkipUnreadable,
			Resume:         values.Resume,
			FrameCacheSize: values.FrameCacheSize,
		}, settings, deviceConfig, imageLoader, imageNormalizer, output, brokers.Broker, recorder),
	}
	logger.Debug.Printf("Services initialized")
	return services, nil
}

// RunSlideshow runs until ctx is cancelled or the slideshow fails.
func RunSlideshow(ctx context.Context, deviceConfig *config.DeviceConfig, eventBusQueueSize int) error {
	stores, err := InitializeStores(deviceConfig.Values().Database)
	if err != nil {
		return err
	}
	defer stores.Close()

	brokers := InitializeEventBrokers(eventBusQueueSize)
	// Brokers drain before the database closes
	defer brokers.Close()

	services, err := InitializeServices(deviceConfig, stores, brokers)
	if err != nil {
		return err
	}
	defer services.Close()

	return services.Slideshow.Run(ctx)
}

// ShowImage renders one image with the configured settings and returns.
func ShowImage(deviceConfig *config.DeviceConfig, path string) error {
	settings, err := deviceConfig.DisplaySettings()
	if err != nil {
		return err
	}
	output, err := OpenDisplay(deviceConfig)
	if err != nil {
		return err
	}
	defer output.Close()

	img, err := imageloader.NewImageLoader(deviceConfig.Values().ExifOrientation).LoadImage(apitype.NewImageFileFromPath(path))
	if err != nil {
		return err
	}
	normalized, err := normalizer.NewNormalizer().Normalize(img, settings)
	if err != nil {
		return err
	}
	return output.Render(normalized)
}

func ListImages(directory string) ([]string, error) {
	images, err := library.LoadImageList(directory)
	if err != nil {
		return nil, err
	}
	return images.Paths(), nil
}
