package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dbassse/kartoteka/internal/domain/garage"
	"github.com/dbassse/kartoteka/internal/log"
	"github.com/dbassse/kartoteka/internal/presentation"
)

// GarageSession wires a car registry to an interactive shell.
func GarageSession(in io.Reader, out io.Writer, logger *log.Logger, registry *garage.Registry, dataDir, ext string) *Shell {
	s := New(in, out, logger, "CAR REGISTRY")

	s.Bind(
		Command{
			Name:    "add",
			Usage:   "add",
			Summary: "add a new car",
			Run: func([]string) error {
				return s.addCar(registry, logger)
			},
		},
		Command{
			Name:    "list",
			Usage:   "list",
			Summary: "list every car in the registry",
			Run: func([]string) error {
				s.println(presentation.CarsTable(registry.Cars()))
				logger.Info(log.CatCars, "listed cars", "count", registry.Len())
				return nil
			},
		},
		Command{
			Name:    "check",
			Usage:   "check <speed>",
			Summary: fmt.Sprintf("check a speed against the %d km/h limit", garage.StandardMaxSpeed),
			MinArgs: 1,
			Run: func(args []string) error {
				speed, err := strconv.Atoi(args[0])
				if err != nil {
					s.println("Speed must be a number.")
					return nil
				}
				if err := garage.CheckSpeed(speed); err != nil {
					logger.Warn(log.CatCars, "speed check failed", "speed", speed)
					return err
				}
				s.success(fmt.Sprintf("Speed %d km/h is within the %d km/h limit.",
					speed, garage.StandardMaxSpeed))
				logger.Info(log.CatCars, "speed check passed", "speed", speed)
				return nil
			},
		},
		Command{
			Name:    "speeding",
			Usage:   "speeding",
			Summary: "list cars exceeding their own limit",
			Run: func([]string) error {
				result := registry.Speeding()
				s.println(presentation.SpeedingTable(result))
				logger.Info(log.CatCars, "listed speeding cars", "count", len(result))
				return nil
			},
		},
		Command{
			Name:    "brand",
			Usage:   "brand <name>",
			Summary: "find cars by brand substring",
			MinArgs: 1,
			Run: func(args []string) error {
				query := strings.Join(args, " ")
				result := registry.FindByBrand(query)
				s.println(presentation.BrandTable(query, result))
				logger.Info(log.CatCars, "searched by brand",
					"query", query, "matches", len(result))
				return nil
			},
		},
		Command{
			Name:    "save",
			Usage:   "save <file>",
			Summary: "save the registry to an XML file",
			MinArgs: 1,
			Run: func(args []string) error {
				path := resolvePath(dataDir, args[0], ext)
				if err := registry.Save(path); err != nil {
					return err
				}
				s.success(fmt.Sprintf("Saved %d records to %s", registry.Len(), path))
				logger.Info(log.CatStore, "saved car registry",
					"path", path, "count", registry.Len())
				return nil
			},
		},
		Command{
			Name:    "load",
			Usage:   "load <file>",
			Summary: "load the registry from an XML file",
			MinArgs: 1,
			Run: func(args []string) error {
				path := resolvePath(dataDir, args[0], ext)
				loaded, skipped, err := registry.Load(path)
				if err != nil {
					return err
				}
				s.reportLoad(path, loaded, skipped)
				logger.Info(log.CatStore, "loaded car registry",
					"path", path, "loaded", loaded, "skipped", skipped)
				return nil
			},
		},
	)
	return s
}

func (s *Shell) addCar(registry *garage.Registry, logger *log.Logger) error {
	s.println("Adding a new car (empty input re-prompts, Ctrl-D aborts).")
	brand, err := s.promptString("Brand")
	if err != nil {
		return s.abortInput()
	}
	model, err := s.promptString("Model")
	if err != nil {
		return s.abortInput()
	}
	plate, err := s.promptString("License plate")
	if err != nil {
		return s.abortInput()
	}
	maxSpeed, err := s.promptInt("Maximum speed (km/h)")
	if err != nil {
		return s.abortInput()
	}
	currentSpeed, err := s.promptInt("Current speed (km/h)")
	if err != nil {
		return s.abortInput()
	}

	c, err := registry.Add(brand, model, plate, maxSpeed, currentSpeed)
	if err != nil {
		logger.ErrorErr(log.CatCars, "add rejected", err)
		return err
	}
	s.success(fmt.Sprintf("Added %s (%s), %d/%d km/h",
		c.FullName(), c.LicensePlate, c.CurrentSpeed, c.MaxSpeed))
	logger.Info(log.CatCars, "car added",
		"car", c.FullName(), "plate", c.LicensePlate,
		"current", c.CurrentSpeed, "max", c.MaxSpeed)
	return nil
}
