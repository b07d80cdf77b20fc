package container

import (
	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"

	"github.com/dmarquezv/tiendaropa/config"
	"github.com/dmarquezv/tiendaropa/internal/infrastructure/identity"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg            *config.Config
	logger         *logrus.Logger
	storeClient    *firestore.Client
	identityClient *identity.Client
)

func SetConfig(c *config.Config)       { cfg = c }
func GetConfig() *config.Config        { return cfg }
func SetLogger(l *logrus.Logger)       { logger = l }
func GetLogger() *logrus.Logger        { return logger }
func SetFirestore(f *firestore.Client) { storeClient = f }
func GetFirestore() *firestore.Client  { return storeClient }
func SetIdentity(c *identity.Client)   { identityClient = c }
func GetIdentity() *identity.Client    { return identityClient }
