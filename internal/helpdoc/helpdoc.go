// Package helpdoc carries the static documentation for the simulator's
// potential options. The text is printed verbatim; the configure-file
// format it describes is consumed by the simulator, never parsed here.
package helpdoc

// KeplerNote supplements the KeplerPotential documentation.
const KeplerNote = `Notice that the Kepler potential is generated from the PowerSphericalPotential (type index: 7) with alpha = 3.
Thus, the second argument (alpha) must be 3.`

// TypeArg describes --type-arg and --conf-file for time-varying
// potentials in the downstream simulator.
const TypeArg = `Here is the description for the setup of --type-arg and --conf-file for using external potentials in the simulator.
Units: the default arguments of the potentials use the natural unit (velocity in [220 km/s], distance in [8 kpc]).
       If the input particle data have different units, the scaling factors should be properly set.
       For example, when the particle mass is in Msun, the argument 'amp' of a potential can be calculated by G*M*GMscale,
       where M is in Msun; G = 0.0044983099795944 [Msun, pc, Myr]; and GMscale = 2.4692087520131e-09 [natural GM unit] / [pc^3/Myr^2].
--type-arg: the parameters to set up a set of potentials fixed at the center of the galactic reference frame.
    This is for a quick set-up of potentials. For a more complex and flexible set of potentials, use --conf-file.
    The format for a combination of the types and arguments of potentials has two styles (no space in the middle):
       1) [type1]:[arg1-1],[arg1-2],**|[type2]:[arg2-1],[arg2-2],**
       2) [type1],[type2],..:[arg1-1],[arg1-2],[arg2-1],**
       where '|' splits different potential types;
             ':' separates the type indices and the argument list;
             ',' separates the items of types or arguments in their lists.
       For example:
          1) --type-arg 15:0.0299946,1.8,0.2375|5:0.7574802,0.375,0.035|9:4.85223053,2.0
          2) --type-arg 15,5,9:0.0299946,1.8,0.2375,0.7574802,0.375,0.035,4.85223053,2.0
          both generate MWPotential2014 (same as --set MWPotential2014).
       The default values of types and arguments for the supported potentials are listed at the end.
       The potentials defined in --type-arg and --set are both added.
       Thus, don't repeat the same potential sets in the two options.
--conf-file: the configure file containing the parameters for time- and space-dependent potentials.
       Users can add, modify and remove potentials at a given time.
       For each potential, the origin (zero) point can be fixed at the galactic frame or follow the motion of the particle system.
       The potential can also be treated as a moving object feeling the force from the other potentials and the particle system.
       The configure file contains a group of blocks with update times.
       The format of one block is:
           Time [value (natural unit)] Task [task name]
           [parameters]
       Each type of parameter follows its label, like 'Time [value]'.
       Here 'Time' is the update time of potentials during the simulation.
       The detail of the potentials depends on the following 'Task' and parameters.
       Be careful with the unit conversion of time and parameters between the simulator and the potential library.
       Don't rename, delete or modify the configure file before the simulation ends.
       The format of [parameters] depends on the task name (add, update, remove) shown as follows.

       For the task 'add':
               Nset [number]
               [set 0 content]
               [set 1 content]
               ...
           Nset indicates the number of new potential sets; each set shares the same central position and velocity.
           Each of the following set contents contains a few lines of parameters:
               Set [index]
               Ntype [number] Mode [index]
               Pos [x y z] Vel [vx vy vz]
               Type [type1 type2 ...]
               Arg [arg1-1 arg1-2 ... arg2-1 ...]
               Nchange [number] Index [Arg_index1, Arg_index2, Arg_index3...]
               *ChangeMode [mode1, mode2, mode3...]
               *ChangeRate [rate1, rate2, rate3...]
           The definition of each parameter:
               Ntype: number of potential types.
                     If there is no argument, the Type line is still necessary (empty line).
               Mode: an index indicating the reference frame for the position and velocity of the potential center:
                     0: the galactic frame
                     1: the particle-system frame; also follows the motion of its center
                     2: the galactic frame, but moving based on the forces from other potentials and from the particle system
               Pos, Vel: the initial position and velocity of the potential center [natural unit] in the frame selected by Mode.
               Type, Arg: types and arguments of each potential, similar to those in --type-arg.
                          The number of values in the Type line must be Ntype.
               The three lines following 'Nchange' are options for evolving potential parameters during the simulation.
                  Nchange: number of evolving arguments; if 0, the two lines marked with '*' are not needed.
                  Arg_index: the indices of arguments to change during the simulation (counting from zero based on the Arg line).
                  ChangeMode: the changing mode for each Arg_index:
                              1: change the argument linearly;
                              2: change the argument exponentially.
                  ChangeRate: the changing rate for each Arg_index, based on ChangeMode:
                              linear (1): change of value per time unit;
                              exponential (2): coefficient 'a' in the exponential decay or growth form exp(a*t).
           For example, the configure file of MWPotential2014 with a linearly-mass-decreasing Plummer potential following the motion of the particle system (natural units):
                 Time 0.0 Task add                    #[update at time 0; task is 'add']
                 Nset 2                               #[2 potential sets]
                 Set 0                                #[set 0 (MWPotential2014)]
                 Ntype 3 Mode 0                       #[3 potential types; mode 0 (galactic frame)]
                 Pos 0.0 0.0 0.0 Vel 0.0 0.0 0.0     #[x, y, z, vx, vy, vz (galactic frame)]
                 Type 15 5 9                          #[3 type indices (MWPotential2014)]
                 Arg 0.029994597188218 1.8 0.2375 0.75748020193716 0.375 0.035 4.852230533528 2.0 #[all arguments for MWPotential2014]
                 Nchange 0                            #[no changing arguments]
                 Set 1                                #[set 1 (Plummer)]
                 Ntype 1 Mode 1                       #[1 type; mode 1 (particle-system frame)]
                 Pos 0.0 0.0 0.0 Vel 0.0 0.0 0.0     #[x, y, z, vx, vy, vz (particle-system frame)]
                 Type 17                              #[type index for Plummer]
                 Arg 1.11072675e-8 0.000125           #[two arguments for Plummer (1000 Msun, 1 pc)]
                 Nchange 1 Index 0                    #[1 changing argument: the mass of the Plummer model]
                 ChangeMode 1                         #[linear change]
                 ChangeRate -1e-9                     #[reduce 1e-9 (natural mass unit) per time unit]
           Here the G*M and distance scaling factors are 2.4692087520131e-09 [natural GM unit] / [pc^3/Myr^2] and 0.000125 [8 kpc] / [pc], respectively.
           The comments after the symbol # are for reference; don't write them in the configure file.
       For the task 'update':
           The format is the same as the task 'add'.
           Here Nset is the number of potential sets to update.
           For the parameters of each set, only the definition of Mode changes slightly.
           For update, the mode has four choices instead: 0, 1, 2 and -2:
               0: the potential center is shifted to the new position and velocity (following line) in the galactic frame;
               1: the potential center is shifted to the new position and velocity in the particle-system frame;
               2: the (moving) potential center is shifted to the new position and velocity in the galactic frame;
              -2: the (moving) potential center keeps the original position and velocity; only the potential arguments update.
           For example, stop the mass decrease of the Plummer model at time 1, referring to the previous instance:
               Time 1.0 Task update
               Nset 1 Index 1      #[only change set 1 (Plummer)]
               Set 1
               Ntype 1 Mode 1
               Pos 0.0 0.0 0.0 Vel 0.0 0.0 0.0
               Type 17
               Arg 1.1072675e-9 0.000125
               Nchange 0           #[stop changing the mass]
       For the task 'remove':
               Nset [number] Index [set_index1 set_index2 ...]
           Here Nset is the number of potential sets to remove, followed by the indices of the removed sets.
           For example, remove the Plummer potential at time 2, following the previous instance:
               Time 2.0 Task remove
               Nset 1 Index 1
Users can either use --type-arg and --set or --conf-file. If both are used, an error appears.
Here is the supported list of potentials with their default type indices and arguments:
`
